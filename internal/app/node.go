package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fold/internal/adapters/cas"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fold/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/fold/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/fold/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/fold/internal/adapters/notify" //nolint:depguard // Wired in app layer
	"go.trai.ch/fold/internal/core/ports"
	"go.trai.ch/fold/internal/engine/compiler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			compiler.NodeID,
			logger.NodeID,
			cas.NodeID,
			fs.WriterNodeID,
			notify.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	comp, err := graft.Dep[*compiler.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.BuildInfoStore](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.OutputWriter](ctx)
	if err != nil {
		return nil, err
	}

	desktop, err := graft.Dep[ports.Notifier](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, comp, log, store, writer, desktop), nil
}
