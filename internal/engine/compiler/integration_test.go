package compiler_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fold/internal/adapters/cas"
	"go.trai.ch/fold/internal/adapters/esbuild"
	"go.trai.ch/fold/internal/adapters/fs"
	"go.trai.ch/fold/internal/adapters/minify"
	"go.trai.ch/fold/internal/adapters/notify"
	"go.trai.ch/fold/internal/adapters/watcher"
	"go.trai.ch/fold/internal/core/domain"
	"go.trai.ch/fold/internal/engine/compiler"
)

// lineLogger records every message so tests can count progress lines.
type lineLogger struct {
	mu    sync.Mutex
	lines []string
	errs  []error
}

func (l *lineLogger) Info(msg string) { l.add(msg) }
func (l *lineLogger) Warn(msg string) { l.add(msg) }

func (l *lineLogger) Error(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, err)
}

func (l *lineLogger) add(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, msg)
}

func (l *lineLogger) count(prefix string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, line := range l.lines {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

func (l *lineLogger) errors() []error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]error(nil), l.errs...)
}

func writeSource(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func newProject(t *testing.T) domain.Settings {
	t.Helper()
	root := t.TempDir()
	writeSource(t, filepath.Join(root, "components", "todo.js"),
		"import { label } from './label.js';\nconsole.log(label);\n")
	writeSource(t, filepath.Join(root, "components", "label.js"),
		"export const label = 'ONE';\n")

	settings := domain.DefaultSettings(root)
	settings.Debounce = 100 * time.Millisecond
	return settings
}

func newRealCompiler(log *lineLogger) *compiler.Compiler {
	return compiler.New(
		esbuild.NewFactory(),
		minify.NewSet(),
		fs.NewWriter(),
		cas.NewStore(),
		watcher.NewFactory(log),
		log,
	)
}

func TestCompiler_Watch_RebuildsOnDependencyChange(t *testing.T) {
	settings := newProject(t)
	cfg := domain.NewCompileConfig(settings, false, true)
	log := &lineLogger{}
	c := newRealCompiler(log)

	session, first, err := c.Watch(context.Background(), cfg, compiler.Options{TaskName: domain.TaskWatch})
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	require.True(t, first.Succeeded())
	bundlePath := cfg.OutputPath()
	contents, err := os.ReadFile(bundlePath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "ONE")
	assert.Equal(t, 1, log.count("Watching files required by"))
	assert.Equal(t, 1, log.count("Bundled "))

	writeSource(t, filepath.Join(settings.WorkDir, "components", "label.js"),
		"export const label = 'TWO';\n")

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(bundlePath)
		return err == nil && strings.Contains(string(data), "TWO") && session.Runs() == 2
	}, 5*time.Second, 20*time.Millisecond)

	// The rebuild's own output writes must not trigger further runs.
	assert.Never(t, func() bool { return session.Runs() > 2 }, 500*time.Millisecond, 50*time.Millisecond)

	assert.Equal(t, 2, log.count("Bundling ./components/todo.js..."))
	assert.Equal(t, 2, log.count("Bundled "))
	assert.True(t, session.LastReport().Succeeded())
	assert.Empty(t, log.errors())
}

func TestCompiler_Run_CanceledContextIsNotNotified(t *testing.T) {
	settings := newProject(t)
	cfg := domain.NewCompileConfig(settings, false, false)
	log := &lineLogger{}
	c := newRealCompiler(log)

	var notified int
	desktop := notify.NewDesktopWithSender(func(_, _ string, _ any) error {
		notified++
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := c.Run(ctx, cfg, compiler.Options{TaskName: domain.TaskDev, Desktop: desktop})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeCanceled, report.Outcome)
	assert.Zero(t, notified)
	assert.Empty(t, log.errors())
	assert.Zero(t, log.count("Bundling bundle.js failed"))
	assert.Equal(t, 1, log.count("Bundling bundle.js canceled after"))
	assert.NoFileExists(t, cfg.OutputPath())
}
