package pipeline

import (
	"context"
	"maps"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/fold/internal/core/domain"
	"go.trai.ch/fold/internal/core/ports"
)

// Runner executes one compile pass: progress begin, every stage in order, progress
// end, then the output write. A failure in any step is handed to the notifier and
// recorded in the report; Run itself never fails. A run stopped by its context is
// reported as canceled without a notification.
type Runner struct {
	cfg      domain.CompileConfig
	taskName string
	stages   []Stage
	progress *Progress
	notifier *ErrorNotifier
	writer   ports.OutputWriter
	store    ports.BuildInfoStore
	logger   ports.Logger
}

// RunnerOptions collects the collaborators of a Runner.
type RunnerOptions struct {
	TaskName string
	Stages   []Stage
	Progress *Progress
	Notifier *ErrorNotifier
	Writer   ports.OutputWriter
	// Store records the outputs of successful runs. It may be nil.
	Store  ports.BuildInfoStore
	Logger ports.Logger
}

// NewRunner creates a Runner for cfg.
func NewRunner(cfg domain.CompileConfig, opts RunnerOptions) *Runner {
	return &Runner{
		cfg:      cfg,
		taskName: opts.TaskName,
		stages:   opts.Stages,
		progress: opts.Progress,
		notifier: opts.Notifier,
		writer:   opts.Writer,
		store:    opts.Store,
		logger:   opts.Logger,
	}
}

// Run executes the pipeline once.
func (r *Runner) Run(ctx context.Context) domain.RunReport {
	start := r.progress.Begin()

	artifact := &domain.Artifact{Name: r.cfg.OutFile}
	if err := r.applyStages(ctx, artifact); err != nil {
		if ctx.Err() != nil {
			return r.cancel(start, artifact, err)
		}
		return r.fail(ctx, start, artifact, err)
	}

	// The end log precedes the write.
	elapsed := r.progress.End(start, true)

	digests, err := r.writer.Write(r.cfg.OutputDir(), artifact.Files(r.cfg.MapFile()))
	if err != nil {
		r.notifier.Handle(ctx, err)
		return domain.RunReport{
			Outcome: domain.OutcomeFailed,
			Err:     err,
			Elapsed: elapsed,
			Inputs:  artifact.Inputs,
		}
	}

	r.record(digests, elapsed)

	return domain.RunReport{
		Outcome: domain.OutcomeSucceeded,
		Elapsed: elapsed,
		Written: slices.Sorted(maps.Keys(digests)),
		Inputs:  artifact.Inputs,
	}
}

func (r *Runner) applyStages(ctx context.Context, a *domain.Artifact) error {
	for _, stage := range r.stages {
		if err := stage.Apply(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) fail(ctx context.Context, start time.Time, a *domain.Artifact, err error) domain.RunReport {
	r.notifier.Handle(ctx, err)
	elapsed := r.progress.End(start, false)
	return domain.RunReport{
		Outcome: domain.OutcomeFailed,
		Err:     err,
		Elapsed: elapsed,
		Inputs:  a.Inputs,
	}
}

// cancel ends a run interrupted by its context. An interrupt is not a bundling
// failure, so the notifier is skipped.
func (r *Runner) cancel(start time.Time, a *domain.Artifact, err error) domain.RunReport {
	elapsed := r.progress.Cancel(start)
	return domain.RunReport{
		Outcome: domain.OutcomeCanceled,
		Err:     err,
		Elapsed: elapsed,
		Inputs:  a.Inputs,
	}
}

// record stores the build info of a successful run. A store failure is only a warning.
func (r *Runner) record(digests map[string]string, elapsed time.Duration) {
	if r.store == nil || r.taskName == "" {
		return
	}
	info := domain.BuildInfo{
		TaskName:  r.taskName,
		Bundle:    r.cfg.OutputPath(),
		SourceMap: filepath.Join(r.cfg.OutputDir(), r.cfg.MapFile()),
		Minified:  r.cfg.Minify,
		Outputs:   digests,
		Elapsed:   elapsed,
		Timestamp: time.Now(),
	}
	if err := r.store.Put(r.cfg.WorkDir, info); err != nil {
		r.logger.Warn("could not record build info: " + err.Error())
	}
}
