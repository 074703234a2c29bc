package ports

import (
	"context"

	"go.trai.ch/fold/internal/core/domain"
)

// Minifier shrinks a bundle.
//
//go:generate mockgen -source=minifier.go -destination=mocks/mock_minifier.go -package=mocks
type Minifier interface {
	// Minify returns the minified code and the source map that maps it back to the
	// original modules. sm may be nil; the returned map is nil when the minifier cannot
	// carry mappings.
	Minify(ctx context.Context, name string, code []byte, sm *domain.SourceMap) ([]byte, *domain.SourceMap, error)
}
