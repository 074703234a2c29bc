package minify

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fold/internal/core/domain"
	"go.trai.ch/fold/internal/core/ports"
)

// NodeID is the unique identifier for the minifier set Graft node.
const NodeID graft.ID = "adapter.minifiers"

// Set holds every available minifier keyed by its configuration name.
type Set map[string]ports.Minifier

// NewSet returns the minifiers known to fold.
func NewSet() Set {
	return Set{
		domain.MinifierEsbuild:  NewEsbuild(),
		domain.MinifierTdewolff: NewTdewolff(),
	}
}

// Lookup returns the minifier registered under name.
func (s Set) Lookup(name string) (ports.Minifier, bool) {
	m, ok := s[name]
	return m, ok
}

func init() {
	graft.Register(graft.Node[Set]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Set, error) {
			return NewSet(), nil
		},
	})
}
