// Package esbuild implements the bundler port with esbuild's incremental build context.
package esbuild

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/fold/internal/core/domain"
	"go.trai.ch/fold/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Bundler        = (*Bundler)(nil)
	_ ports.BundlerFactory = (*Factory)(nil)
)

var targets = map[string]api.Target{
	"es5":    api.ES5,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
	"esnext": api.ESNext,
}

// Factory creates esbuild bundlers.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewBundler creates a Bundler for cfg. The underlying build context is kept alive
// until Close so that later Bundle calls reuse its parse cache.
func (f *Factory) NewBundler(cfg domain.CompileConfig) (ports.Bundler, error) {
	return New(cfg)
}

// Bundler resolves and concatenates modules with one long-lived esbuild context.
type Bundler struct {
	mu      sync.Mutex
	ctx     api.BuildContext
	workDir string
}

// New creates a Bundler for cfg.
func New(cfg domain.CompileConfig) (*Bundler, error) {
	target, ok := targets[strings.ToLower(cfg.Target)]
	if !ok {
		return nil, zerr.With(domain.ErrInvalidTarget, "target", cfg.Target)
	}

	opts := api.BuildOptions{
		EntryPoints:   []string{cfg.EntryPath()},
		Outfile:       cfg.OutputPath(),
		AbsWorkingDir: cfg.WorkDir,
		Bundle:        true,
		Write:         false,
		Metafile:      true,
		Sourcemap:     api.SourceMapInline,
		Target:        target,
		Format:        api.FormatIIFE,
		Platform:      api.PlatformBrowser,
		LogLevel:      api.LogLevelSilent,
	}

	buildCtx, ctxErr := api.Context(opts)
	if ctxErr != nil {
		return nil, zerr.With(
			zerr.Wrap(messagesError(ctxErr.Errors), domain.ErrBundlerCreateFailed.Error()),
			"entry", cfg.Entry,
		)
	}

	return &Bundler{ctx: buildCtx, workDir: cfg.WorkDir}, nil
}

// Bundle runs one incremental build. Canceling ctx cancels the build in flight.
func (b *Bundler) Bundle(ctx context.Context) (*domain.Bundle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctx == nil {
		return nil, zerr.Wrap(context.Canceled, domain.ErrBundleCanceled.Error())
	}
	if err := ctx.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrBundleCanceled.Error())
	}

	done := make(chan api.BuildResult, 1)
	go func() {
		done <- b.ctx.Rebuild()
	}()

	var result api.BuildResult
	select {
	case result = <-done:
	case <-ctx.Done():
		b.ctx.Cancel()
		<-done
		return nil, zerr.Wrap(ctx.Err(), domain.ErrBundleCanceled.Error())
	}

	if len(result.Errors) > 0 {
		return nil, zerr.Wrap(messagesError(result.Errors), domain.ErrBundleFailed.Error())
	}

	contents := bundleContents(result.OutputFiles)
	if contents == nil {
		return nil, domain.ErrBundleEmpty
	}

	inputs, err := metafileInputs(b.workDir, result.Metafile)
	if err != nil {
		return nil, err
	}

	return &domain.Bundle{Contents: contents, Inputs: inputs}, nil
}

// Close disposes the build context. It is safe to call more than once.
func (b *Bundler) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctx != nil {
		b.ctx.Dispose()
		b.ctx = nil
	}
	return nil
}

// bundleContents picks the JavaScript output. With an inline map esbuild emits a single file.
func bundleContents(files []api.OutputFile) []byte {
	for _, f := range files {
		if filepath.Ext(f.Path) == domain.SourceMapExt {
			continue
		}
		return f.Contents
	}
	return nil
}

type metafile struct {
	Inputs map[string]json.RawMessage `json:"inputs"`
}

// metafileInputs returns the absolute, sorted paths of the modules esbuild resolved.
func metafileInputs(workDir, raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}

	var meta metafile
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, zerr.Wrap(err, domain.ErrMetafileParseFailed.Error())
	}

	inputs := make([]string, 0, len(meta.Inputs))
	for p := range meta.Inputs {
		// Virtual modules such as "<runtime>" or namespaced paths have no file on disk.
		if strings.Contains(p, ":") && !filepath.IsAbs(p) {
			continue
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(workDir, filepath.FromSlash(p))
		}
		inputs = append(inputs, filepath.Clean(p))
	}
	slices.Sort(inputs)
	return inputs, nil
}

// messagesError turns esbuild diagnostics into a single error with one line per message.
func messagesError(msgs []api.Message) error {
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if m.Location == nil {
			lines = append(lines, m.Text)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s:%d:%d: %s", m.Location.File, m.Location.Line, m.Location.Column, m.Text))
	}
	if len(lines) == 0 {
		return errors.New("unknown bundler error")
	}
	return errors.New(strings.Join(lines, "\n"))
}
