package esbuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fold/internal/core/ports"
)

// NodeID is the unique identifier for the bundler factory Graft node.
const NodeID graft.ID = "adapter.bundler_factory"

func init() {
	graft.Register(graft.Node[ports.BundlerFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BundlerFactory, error) {
			return NewFactory(), nil
		},
	})
}
