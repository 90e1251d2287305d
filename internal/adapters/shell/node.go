package shell

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

const (
	// CompilerNodeID is the unique identifier for the compiler Graft node.
	CompilerNodeID graft.ID = "adapter.compiler"
	// RunnerNodeID is the unique identifier for the runner Graft node.
	RunnerNodeID graft.ID = "adapter.runner"
)

func init() {
	graft.Register(graft.Node[ports.Compiler]{
		ID:        CompilerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Compiler, error) {
			return NewCompiler(os.Stderr), nil
		},
	})

	graft.Register(graft.Node[ports.Runner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Runner, error) {
			return NewRelay(os.Stdin, os.Stdout, os.Stderr), nil
		},
	})
}
