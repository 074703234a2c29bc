// Package compiler turns a compile configuration into bundle runs, once or in a
// watch session.
package compiler

import (
	"context"

	"github.com/muesli/termenv"
	"go.trai.ch/fold/internal/core/domain"
	"go.trai.ch/fold/internal/core/ports"
	"go.trai.ch/fold/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// Compiler builds and runs bundle pipelines.
type Compiler struct {
	bundlers  ports.BundlerFactory
	minifiers map[string]ports.Minifier
	writer    ports.OutputWriter
	store     ports.BuildInfoStore
	watchers  ports.WatcherFactory
	logger    ports.Logger
	out       *termenv.Output
}

// New creates a new Compiler.
func New(
	bundlers ports.BundlerFactory,
	minifiers map[string]ports.Minifier,
	writer ports.OutputWriter,
	store ports.BuildInfoStore,
	watchers ports.WatcherFactory,
	logger ports.Logger,
) *Compiler {
	return &Compiler{
		bundlers:  bundlers,
		minifiers: minifiers,
		writer:    writer,
		store:     store,
		watchers:  watchers,
		logger:    logger,
	}
}

// WithOutput sets the terminal output used to colour progress lines.
func (c *Compiler) WithOutput(out *termenv.Output) *Compiler {
	c.out = out
	return c
}

// Options are the per invocation settings of a compile.
type Options struct {
	// TaskName keys the recorded build info.
	TaskName string
	// Desktop receives failure notifications in addition to the console. It may be nil.
	Desktop ports.Notifier
}

// Run bundles cfg once. Bundling failures are reported through the notifier and the
// returned report; the error is only set when the pipeline cannot be built.
func (c *Compiler) Run(ctx context.Context, cfg domain.CompileConfig, opts Options) (domain.RunReport, error) {
	bundler, err := c.bundlers.NewBundler(cfg)
	if err != nil {
		return domain.RunReport{}, zerr.Wrap(err, domain.ErrBundlerCreateFailed.Error())
	}
	defer func() {
		_ = bundler.Close()
	}()

	runner, _, err := c.newRunner(cfg, bundler, opts)
	if err != nil {
		return domain.RunReport{}, err
	}
	return runner.Run(ctx), nil
}

// Watch bundles cfg once and then keeps rebuilding it whenever one of its inputs
// changes. It returns after the first build together with the live session; the
// session ends when ctx is canceled or Close is called.
func (c *Compiler) Watch(ctx context.Context, cfg domain.CompileConfig, opts Options) (*Session, domain.RunReport, error) {
	bundler, err := c.bundlers.NewBundler(cfg)
	if err != nil {
		return nil, domain.RunReport{}, zerr.Wrap(err, domain.ErrBundlerCreateFailed.Error())
	}

	runner, progress, err := c.newRunner(cfg, bundler, opts)
	if err != nil {
		_ = bundler.Close()
		return nil, domain.RunReport{}, err
	}

	w, err := c.watchers.NewWatcher()
	if err != nil {
		_ = bundler.Close()
		return nil, domain.RunReport{}, zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}

	progress.Watch()

	s := newSession(cfg, runner, bundler, w)
	report, err := s.start(ctx)
	if err != nil {
		return nil, report, err
	}
	return s, report, nil
}

func (c *Compiler) newRunner(
	cfg domain.CompileConfig,
	bundler ports.Bundler,
	opts Options,
) (*pipeline.Runner, *pipeline.Progress, error) {
	var minifier ports.Minifier
	if cfg.Minify {
		m, ok := c.minifiers[cfg.Minifier]
		if !ok {
			return nil, nil, zerr.With(domain.ErrInvalidMinifier, "minifier", cfg.Minifier)
		}
		minifier = m
	}

	progress := pipeline.NewProgress(c.logger, c.out, cfg.Entry, cfg.OutFile)
	runner := pipeline.NewRunner(cfg, pipeline.RunnerOptions{
		TaskName: opts.TaskName,
		Stages:   pipeline.Stages(cfg, bundler, minifier),
		Progress: progress,
		Notifier: pipeline.NewErrorNotifier(c.logger, opts.Desktop),
		Writer:   c.writer,
		Store:    c.store,
		Logger:   c.logger,
	})
	return runner, progress, nil
}
