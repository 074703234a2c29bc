// Package app implements the application layer for fold.
package app

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/fold/internal/adapters/detector"
	"go.trai.ch/fold/internal/core/domain"
	"go.trai.ch/fold/internal/core/ports"
	"go.trai.ch/fold/internal/engine/compiler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	compiler     *compiler.Compiler
	logger       ports.Logger
	store        ports.BuildInfoStore
	writer       ports.OutputWriter
	desktop      ports.Notifier
	workDir      string
	detect       func() detector.Environment
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	comp *compiler.Compiler,
	log ports.Logger,
	store ports.BuildInfoStore,
	writer ports.OutputWriter,
	desktop ports.Notifier,
) *App {
	return &App{
		configLoader: loader,
		compiler:     comp,
		logger:       log,
		store:        store,
		writer:       writer,
		desktop:      desktop,
		workDir:      ".",
		detect:       detector.DetectEnvironment,
	}
}

// WithWorkDir sets the directory the configuration is looked up from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithEnvironment overrides environment detection.
// This is primarily used for testing to get a stable notification mode.
func (a *App) WithEnvironment(env detector.Environment) *App {
	a.detect = func() detector.Environment { return env }
	return a
}

// RunOptions configuration for the Run methods.
type RunOptions struct {
	// ConfigPath is the configuration file, relative to the work directory.
	ConfigPath string
	// Strict turns a failed one-shot build into domain.ErrBuildExecutionFailed.
	Strict bool
}

// RunDev bundles the entry once without minification.
func (a *App) RunDev(ctx context.Context, opts RunOptions) (domain.RunReport, error) {
	return a.runOnce(ctx, domain.TaskDev, opts)
}

// RunRelease bundles the entry once with minification.
func (a *App) RunRelease(ctx context.Context, opts RunOptions) (domain.RunReport, error) {
	return a.runOnce(ctx, domain.TaskRelease, opts)
}

// RunWatch bundles the entry and keeps rebuilding it on change. It returns after the
// first build; the session lives until ctx is canceled or it is closed.
func (a *App) RunWatch(ctx context.Context, opts RunOptions) (*compiler.Session, domain.RunReport, error) {
	spec, _ := domain.LookupTask(domain.TaskWatch)
	settings, err := a.loadSettings(opts)
	if err != nil {
		return nil, domain.RunReport{}, err
	}
	return a.watch(ctx, spec, settings)
}

// RunTasks runs the named tasks in order through their entry points RunDev,
// RunRelease and RunWatch. Watch tasks keep running after their first build; RunTasks
// then blocks until every watch session has ended.
func (a *App) RunTasks(ctx context.Context, names []string, opts RunOptions) error {
	if len(names) == 0 {
		return domain.ErrNoTasksSpecified
	}

	specs := make([]domain.TaskSpec, 0, len(names))
	for _, name := range names {
		spec, ok := domain.LookupTask(name)
		if !ok {
			return zerr.With(domain.ErrTaskNotFound, "task", name)
		}
		specs = append(specs, spec)
	}

	var sessions []*compiler.Session
	defer func() {
		for _, s := range sessions {
			_ = s.Close()
		}
	}()

	for _, spec := range specs {
		switch {
		case spec.Watch:
			session, _, err := a.RunWatch(ctx, opts)
			if err != nil {
				return err
			}
			sessions = append(sessions, session)
		case spec.Minify:
			if _, err := a.RunRelease(ctx, opts); err != nil {
				return err
			}
		default:
			if _, err := a.RunDev(ctx, opts); err != nil {
				return err
			}
		}
	}

	for _, s := range sessions {
		if err := s.Wait(); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) runOnce(ctx context.Context, name string, opts RunOptions) (domain.RunReport, error) {
	spec, _ := domain.LookupTask(name)
	settings, err := a.loadSettings(opts)
	if err != nil {
		return domain.RunReport{}, err
	}

	report, err := a.compile(ctx, spec, settings)
	if err != nil {
		return report, err
	}
	if opts.Strict && !report.Succeeded() {
		return report, errors.Join(domain.ErrBuildExecutionFailed, report.Err)
	}
	return report, nil
}

func (a *App) compile(ctx context.Context, spec domain.TaskSpec, settings domain.Settings) (domain.RunReport, error) {
	cfg := domain.NewCompileConfig(settings, spec.Minify, spec.Watch)
	return a.compiler.Run(ctx, cfg, a.compileOptions(spec, settings))
}

func (a *App) watch(
	ctx context.Context,
	spec domain.TaskSpec,
	settings domain.Settings,
) (*compiler.Session, domain.RunReport, error) {
	cfg := domain.NewCompileConfig(settings, spec.Minify, spec.Watch)
	return a.compiler.Watch(ctx, cfg, a.compileOptions(spec, settings))
}

func (a *App) compileOptions(spec domain.TaskSpec, settings domain.Settings) compiler.Options {
	opts := compiler.Options{TaskName: spec.Name}
	if a.desktop != nil && detector.DesktopEnabled(settings.Notify, a.detect()) {
		opts.Desktop = a.desktop
	}
	return opts
}

func (a *App) loadSettings(opts RunOptions) (domain.Settings, error) {
	settings, err := a.configLoader.Load(a.workDir, opts.ConfigPath)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}
	return settings, nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
	// Outputs removes the files written by previous builds.
	Outputs bool
	// Store removes the recorded build info.
	Store bool
}

// Clean removes the outputs of previous builds and the build info store.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	settings, err := a.loadSettings(RunOptions{ConfigPath: options.ConfigPath})
	if err != nil {
		return err
	}
	root := settings.WorkDir

	var errs error

	if options.Outputs {
		if err := a.cleanOutputs(root); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	if options.Store {
		a.logger.Info("removing build info store...")
		if err := os.RemoveAll(filepath.Join(root, domain.DefaultStorePath())); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, "failed to remove build info store"))
		} else {
			a.logger.Info("removed build info store")
		}
	}

	return errs
}

func (a *App) cleanOutputs(root string) error {
	outputs := make(map[string]struct{})
	for _, spec := range domain.Tasks {
		info, err := a.store.Get(root, spec.Name)
		if err != nil {
			return err
		}
		if info == nil {
			continue
		}
		for path := range info.Outputs {
			outputs[path] = struct{}{}
		}
	}

	if len(outputs) == 0 {
		a.logger.Info("no build outputs to remove")
		return nil
	}

	removed, err := a.writer.Remove(slices.Sorted(maps.Keys(outputs)))
	for _, path := range removed {
		a.logger.Info(fmt.Sprintf("removed %s", path))
	}
	return err
}
