package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fold/internal/adapters/cas"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fold/internal/adapters/esbuild" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fold/internal/adapters/fs"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fold/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fold/internal/adapters/minify"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fold/internal/adapters/watcher" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fold/internal/core/ports"
)

// NodeID is the unique identifier for the compiler Graft node.
const NodeID graft.ID = "engine.compiler"

func init() {
	graft.Register(graft.Node[*Compiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			esbuild.NodeID,
			minify.NodeID,
			fs.WriterNodeID,
			cas.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Compiler, error) {
			bundlers, err := graft.Dep[ports.BundlerFactory](ctx)
			if err != nil {
				return nil, err
			}

			minifiers, err := graft.Dep[minify.Set](ctx)
			if err != nil {
				return nil, err
			}

			writer, err := graft.Dep[ports.OutputWriter](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.BuildInfoStore](ctx)
			if err != nil {
				return nil, err
			}

			watchers, err := graft.Dep[ports.WatcherFactory](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(bundlers, minifiers, writer, store, watchers, log), nil
		},
	})
}
