package compiler

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/fold/internal/adapters/watcher"
	"go.trai.ch/fold/internal/core/domain"
	"go.trai.ch/fold/internal/core/ports"
	"go.trai.ch/fold/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Session is a live watch mode build. It owns the bundler, the file watcher and the
// debouncer and releases all three on Close.
//
// Runs are serialised by a single loop. A change arriving while a run is in flight
// queues one follow-up run; further changes coalesce into it.
type Session struct {
	cfg       domain.CompileConfig
	runner    *pipeline.Runner
	bundler   ports.Bundler
	watcher   ports.Watcher
	debouncer *watcher.Debouncer
	trigger   chan struct{}

	mu     sync.Mutex
	inputs map[string]bool
	last   domain.RunReport
	runs   int

	group     *errgroup.Group
	cancel    context.CancelFunc
	closeOnce sync.Once
	closeErr  error
}

func newSession(cfg domain.CompileConfig, runner *pipeline.Runner, bundler ports.Bundler, w ports.Watcher) *Session {
	s := &Session{
		cfg:     cfg,
		runner:  runner,
		bundler: bundler,
		watcher: w,
		trigger: make(chan struct{}, 1),
	}
	s.debouncer = watcher.NewDebouncer(cfg.Debounce, func([]string) { s.schedule() })
	return s
}

// start runs the first build, then starts watching. The first build happens before
// the watcher is armed so its own output writes are never observed.
func (s *Session) start(parent context.Context) (domain.RunReport, error) {
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel

	report := s.run(ctx)

	if err := s.watcher.Start(ctx, s.cfg.WorkDir, s.cfg.OutputDir()); err != nil {
		cancel()
		_ = s.watcher.Stop()
		_ = s.bundler.Close()
		return report, zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}

	g, gctx := errgroup.WithContext(ctx)
	s.group = g

	g.Go(func() error {
		for ev := range s.watcher.Events() {
			if s.relevant(ev.Path) {
				s.debouncer.Add(ev.Path)
			}
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-s.trigger:
				s.run(gctx)
			}
		}
	})

	return report, nil
}

// schedule requests a run. It never blocks: a pending request absorbs new ones.
func (s *Session) schedule() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

func (s *Session) run(ctx context.Context) domain.RunReport {
	report := s.runner.Run(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs++
	s.last = report
	if report.Succeeded() && len(report.Inputs) > 0 {
		s.inputs = make(map[string]bool, len(report.Inputs))
		for _, p := range report.Inputs {
			s.inputs[filepath.Clean(p)] = true
		}
	} else if report.Outcome == domain.OutcomeFailed {
		// A failed run may be fixed by a file the last good build never saw,
		// e.g. a module that was missing, so every project file counts until then.
		s.inputs = nil
	}
	return report
}

// relevant reports whether a change to path should trigger a rebuild.
func (s *Session) relevant(path string) bool {
	path = filepath.Clean(path)

	s.mu.Lock()
	inputs := s.inputs
	s.mu.Unlock()

	if len(inputs) > 0 {
		return inputs[path]
	}
	return within(s.cfg.WorkDir, path) && !within(s.cfg.OutputDir(), path)
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Runs returns the number of completed runs, including the first build.
func (s *Session) Runs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs
}

// LastReport returns the report of the most recent run.
func (s *Session) LastReport() domain.RunReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Wait blocks until the session ends.
func (s *Session) Wait() error {
	return s.group.Wait()
}

// Close stops the watcher and disposes the bundler. It is safe to call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		s.debouncer.Stop()
		stopErr := s.watcher.Stop()
		_ = s.group.Wait()
		closeErr := s.bundler.Close()
		if stopErr != nil {
			s.closeErr = stopErr
		} else {
			s.closeErr = closeErr
		}
	})
	return s.closeErr
}
