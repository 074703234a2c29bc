// Package pipeline runs the ordered bundle stages of one compile pass.
package pipeline

import (
	"context"

	"go.trai.ch/fold/internal/core/domain"
	"go.trai.ch/fold/internal/core/ports"
	"go.trai.ch/zerr"
)

// Stage transforms the artifact in place. A stage error ends the run.
type Stage interface {
	Name() string
	Apply(ctx context.Context, a *domain.Artifact) error
}

// Stages returns the fixed stage list for cfg. The minify stage is only present
// when cfg.Minify is set.
func Stages(cfg domain.CompileConfig, bundler ports.Bundler, minifier ports.Minifier) []Stage {
	stages := []Stage{
		&BundleStage{bundler: bundler},
		&LoadMapsStage{},
	}
	if cfg.Minify {
		stages = append(stages, &MinifyStage{minifier: minifier})
	}
	return append(stages, &WriteMapsStage{mapFile: cfg.MapFile()})
}

// BundleStage resolves the entry module and concatenates its dependencies.
type BundleStage struct {
	bundler ports.Bundler
}

// Name implements Stage.
func (s *BundleStage) Name() string { return "bundle" }

// Apply implements Stage.
func (s *BundleStage) Apply(ctx context.Context, a *domain.Artifact) error {
	b, err := s.bundler.Bundle(ctx)
	if err != nil {
		return err
	}
	if len(b.Contents) == 0 {
		return domain.ErrBundleEmpty
	}
	a.Contents = b.Contents
	a.Inputs = b.Inputs
	return nil
}

// LoadMapsStage starts source map tracking from the inline map the bundler emitted.
type LoadMapsStage struct{}

// Name implements Stage.
func (s *LoadMapsStage) Name() string { return "load-maps" }

// Apply implements Stage.
func (s *LoadMapsStage) Apply(_ context.Context, a *domain.Artifact) error {
	body, sm, err := domain.ExtractInlineSourceMap(a.Contents)
	if err != nil {
		return zerr.With(err, "file", a.Name)
	}
	if sm == nil {
		// Nothing to load: track the bundle as its own source.
		sm = &domain.SourceMap{Version: 3, Sources: []string{a.Name}, Names: []string{}}
	}
	a.Contents = body
	a.Map = sm
	return nil
}

// MinifyStage shrinks the bundle, chaining the tracked map through the minifier.
type MinifyStage struct {
	minifier ports.Minifier
}

// Name implements Stage.
func (s *MinifyStage) Name() string { return "minify" }

// Apply implements Stage.
func (s *MinifyStage) Apply(ctx context.Context, a *domain.Artifact) error {
	code, sm, err := s.minifier.Minify(ctx, a.Name, a.Contents, a.Map)
	if err != nil {
		return err
	}
	if sm == nil {
		// The minifier cannot carry mappings; keep the sources, drop the positions.
		sm = &domain.SourceMap{Names: []string{}}
		if a.Map != nil {
			sm.Sources = a.Map.Sources
			sm.SourcesContent = a.Map.SourcesContent
		}
		sm.Version = 3
	}
	a.Contents = code
	a.Map = sm
	return nil
}

// WriteMapsStage encodes the tracked map as an external file and links it from the bundle.
type WriteMapsStage struct {
	mapFile string
}

// Name implements Stage.
func (s *WriteMapsStage) Name() string { return "write-maps" }

// Apply implements Stage.
func (s *WriteMapsStage) Apply(_ context.Context, a *domain.Artifact) error {
	if a.Map == nil {
		return nil
	}

	sm := *a.Map
	sm.File = a.Name
	if sm.Names == nil {
		sm.Names = []string{}
	}
	if sm.Sources == nil {
		sm.Sources = []string{}
	}

	data, err := sm.Encode()
	if err != nil {
		return zerr.With(err, "file", s.mapFile)
	}

	body, _ := domain.SplitSourceMappingURL(a.Contents)
	a.Contents = domain.WithSourceMappingURL(body, s.mapFile)
	a.MapContents = data
	return nil
}
