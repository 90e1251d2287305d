package preprocess

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the preprocessor Graft node.
const NodeID graft.ID = "engine.preprocessor"

var _ ports.Preprocessor = (*Preprocessor)(nil)

func init() {
	graft.Register(graft.Node[ports.Preprocessor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Preprocessor, error) {
			return New(), nil
		},
	})
}
