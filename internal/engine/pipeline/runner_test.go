package pipeline_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fold/internal/core/domain"
	"go.trai.ch/fold/internal/core/ports/mocks"
	"go.trai.ch/fold/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type runnerMocks struct {
	bundler  *mocks.MockBundler
	minifier *mocks.MockMinifier
	writer   *mocks.MockOutputWriter
	store    *mocks.MockBuildInfoStore
	notifier *mocks.MockNotifier
	logger   *mocks.MockLogger
}

func newRunner(t *testing.T, cfg domain.CompileConfig) (*pipeline.Runner, runnerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := runnerMocks{
		bundler:  mocks.NewMockBundler(ctrl),
		minifier: mocks.NewMockMinifier(ctrl),
		writer:   mocks.NewMockOutputWriter(ctrl),
		store:    mocks.NewMockBuildInfoStore(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	progress := pipeline.NewProgress(m.logger, nil, cfg.Entry, cfg.OutFile).
		WithClock(stepClock(time.Unix(0, 0), 10*time.Millisecond))

	r := pipeline.NewRunner(cfg, pipeline.RunnerOptions{
		TaskName: domain.TaskDev,
		Stages:   pipeline.Stages(cfg, m.bundler, m.minifier),
		Progress: progress,
		Notifier: pipeline.NewErrorNotifier(m.logger, m.notifier),
		Writer:   m.writer,
		Store:    m.store,
		Logger:   m.logger,
	})
	return r, m
}

func TestRunner_Success(t *testing.T) {
	cfg := testConfig(t, false)
	r, m := newRunner(t, cfg)
	ctx := context.Background()

	bundlePath := cfg.OutputPath()
	mapPath := filepath.Join(cfg.OutputDir(), cfg.MapFile())
	digests := map[string]string{bundlePath: "aa", mapPath: "bb"}

	gomock.InOrder(
		m.logger.EXPECT().Info("Bundling ./components/todo.js..."),
		m.bundler.EXPECT().Bundle(ctx).Return(&domain.Bundle{
			Contents: inlineBundle(t, "console.log(1);", testMap()),
			Inputs:   []string{"/project/components/todo.js"},
		}, nil),
		m.logger.EXPECT().Info("Bundled bundle.js in 10 ms"),
		m.writer.EXPECT().
			Write(cfg.OutputDir(), gomock.Len(2)).
			DoAndReturn(func(_ string, files []domain.OutputFile) (map[string]string, error) {
				assert.Equal(t, "bundle.js", files[0].Name)
				assert.Equal(t, "bundle.js.map", files[1].Name)
				assert.Contains(t, string(files[0].Contents), "//# sourceMappingURL=bundle.js.map")
				return digests, nil
			}),
		m.store.EXPECT().
			Put(cfg.WorkDir, gomock.Any()).
			DoAndReturn(func(_ string, info domain.BuildInfo) error {
				assert.Equal(t, domain.TaskDev, info.TaskName)
				assert.Equal(t, bundlePath, info.Bundle)
				assert.Equal(t, mapPath, info.SourceMap)
				assert.False(t, info.Minified)
				assert.Equal(t, digests, info.Outputs)
				assert.Equal(t, 10*time.Millisecond, info.Elapsed)
				return nil
			}),
	)

	report := r.Run(ctx)

	require.True(t, report.Succeeded())
	require.NoError(t, report.Err)
	assert.Equal(t, []string{bundlePath, mapPath}, report.Written)
	assert.Equal(t, []string{"/project/components/todo.js"}, report.Inputs)
	assert.Equal(t, 10*time.Millisecond, report.Elapsed)
}

func TestRunner_BundleFailure(t *testing.T) {
	cfg := testConfig(t, true)
	r, m := newRunner(t, cfg)
	ctx := context.Background()

	bundleErr := errors.New("components/todo.js:1:6: Expected identifier but found \"=\"")

	gomock.InOrder(
		m.logger.EXPECT().Info("Bundling ./components/todo.js..."),
		m.bundler.EXPECT().Bundle(ctx).Return(nil, bundleErr),
		m.logger.EXPECT().Error(gomock.Any()),
		m.notifier.EXPECT().Notify(ctx, "Task Error", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, message string) error {
				assert.Contains(t, message, "Expected identifier")
				return nil
			}).Times(1),
		m.logger.EXPECT().Warn("Bundling bundle.js failed after 10 ms"),
	)
	// No minify, write or store calls may happen.

	report := r.Run(ctx)

	assert.False(t, report.Succeeded())
	assert.Equal(t, domain.OutcomeFailed, report.Outcome)
	require.ErrorIs(t, report.Err, bundleErr)
	assert.Empty(t, report.Written)
}

func TestRunner_CanceledIsNotNotified(t *testing.T) {
	cfg := testConfig(t, false)
	r, m := newRunner(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gomock.InOrder(
		m.logger.EXPECT().Info("Bundling ./components/todo.js..."),
		m.bundler.EXPECT().Bundle(ctx).
			Return(nil, zerr.Wrap(context.Canceled, domain.ErrBundleCanceled.Error())),
		m.logger.EXPECT().Info("Bundling bundle.js canceled after 10 ms"),
	)
	// No Error, Warn, Notify, Write or Put calls may happen.

	report := r.Run(ctx)

	assert.False(t, report.Succeeded())
	assert.Equal(t, domain.OutcomeCanceled, report.Outcome)
	require.ErrorContains(t, report.Err, domain.ErrBundleCanceled.Error())
	assert.Empty(t, report.Written)
}

func TestRunner_MinifyFailure(t *testing.T) {
	cfg := testConfig(t, true)
	r, m := newRunner(t, cfg)
	ctx := context.Background()

	minifyErr := errors.New("minify exploded")

	m.logger.EXPECT().Info(gomock.Any())
	m.bundler.EXPECT().Bundle(ctx).Return(&domain.Bundle{Contents: []byte("var a;\n")}, nil)
	m.minifier.EXPECT().Minify(ctx, "bundle.js", gomock.Any(), gomock.Any()).Return(nil, nil, minifyErr)
	m.logger.EXPECT().Error(gomock.Any())
	m.notifier.EXPECT().Notify(ctx, "Task Error", gomock.Any()).Return(nil)
	m.logger.EXPECT().Warn(gomock.Any())

	report := r.Run(ctx)

	assert.False(t, report.Succeeded())
	require.ErrorIs(t, report.Err, minifyErr)
}

func TestRunner_DesktopFailureIsWarning(t *testing.T) {
	cfg := testConfig(t, false)
	r, m := newRunner(t, cfg)
	ctx := context.Background()

	m.logger.EXPECT().Info(gomock.Any())
	m.bundler.EXPECT().Bundle(ctx).Return(nil, errors.New("boom"))
	m.logger.EXPECT().Error(gomock.Any())
	m.notifier.EXPECT().Notify(ctx, "Task Error", gomock.Any()).Return(errors.New("no notification daemon"))
	m.logger.EXPECT().Warn("could not show desktop notification: no notification daemon")
	m.logger.EXPECT().Warn("Bundling bundle.js failed after 10 ms")

	report := r.Run(ctx)
	assert.Equal(t, domain.OutcomeFailed, report.Outcome)
}

func TestRunner_WriteFailure(t *testing.T) {
	cfg := testConfig(t, false)
	r, m := newRunner(t, cfg)
	ctx := context.Background()

	writeErr := errors.New("disk full")

	m.logger.EXPECT().Info(gomock.Any()).Times(2)
	m.bundler.EXPECT().Bundle(ctx).Return(&domain.Bundle{Contents: []byte("var a;\n")}, nil)
	m.writer.EXPECT().Write(cfg.OutputDir(), gomock.Any()).Return(nil, writeErr)
	m.logger.EXPECT().Error(writeErr)
	m.notifier.EXPECT().Notify(ctx, "Task Error", "disk full").Return(nil)

	report := r.Run(ctx)

	assert.Equal(t, domain.OutcomeFailed, report.Outcome)
	require.ErrorIs(t, report.Err, writeErr)
}

func TestRunner_StoreFailureIsWarning(t *testing.T) {
	cfg := testConfig(t, false)
	r, m := newRunner(t, cfg)
	ctx := context.Background()

	m.logger.EXPECT().Info(gomock.Any()).Times(2)
	m.bundler.EXPECT().Bundle(ctx).Return(&domain.Bundle{Contents: []byte("var a;\n")}, nil)
	m.writer.EXPECT().Write(gomock.Any(), gomock.Any()).Return(map[string]string{"/out/bundle.js": "aa"}, nil)
	m.store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("read-only"))
	m.logger.EXPECT().Warn("could not record build info: read-only")

	report := r.Run(ctx)
	assert.True(t, report.Succeeded())
}
