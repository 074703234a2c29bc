package ports

import (
	"context"

	"go.trai.ch/fold/internal/core/domain"
)

// Bundler resolves the entry module and concatenates it with its dependencies.
// A Bundler keeps its module cache between calls so repeated Bundle calls are incremental.
//
//go:generate mockgen -source=bundler.go -destination=mocks/mock_bundler.go -package=mocks
type Bundler interface {
	// Bundle runs one resolve-and-concatenate pass. The returned contents end with an
	// inline source map. Resolution and syntax errors are returned as errors.
	Bundle(ctx context.Context) (*domain.Bundle, error)

	// Close releases the bundler's cache and any resources it holds.
	Close() error
}

// BundlerFactory creates a Bundler bound to a compile configuration.
type BundlerFactory interface {
	NewBundler(cfg domain.CompileConfig) (Bundler, error)
}
