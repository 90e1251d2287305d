package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/cas"
	"go.trai.ch/kiln/internal/adapters/config"
	"go.trai.ch/kiln/internal/adapters/logger"
	"go.trai.ch/kiln/internal/adapters/shell"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/preprocess"
)

// AppNodeID is the unique identifier for the main App Graft node.
const AppNodeID graft.ID = "app.main"

// ComponentsNodeID is the unique identifier for the Components Graft node.
const ComponentsNodeID graft.ID = "app.components"

// Components holds what the CLI needs from the dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cas.NodeID,
			config.NodeID,
			preprocess.NodeID,
			shell.CompilerNodeID,
			shell.RunnerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			cache, err := graft.Dep[ports.ScriptCache](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			pre, err := graft.Dep[ports.Preprocessor](ctx)
			if err != nil {
				return nil, err
			}
			compiler, err := graft.Dep[ports.Compiler](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cache, loader, pre, compiler, runner, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}
