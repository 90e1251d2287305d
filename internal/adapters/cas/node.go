package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the script cache Graft node.
const NodeID graft.ID = "adapter.script_cache"

func init() {
	graft.Register(graft.Node[ports.ScriptCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScriptCache, error) {
			return NewStore(), nil
		},
	})
}
