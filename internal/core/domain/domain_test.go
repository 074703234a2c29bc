package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fold/internal/core/domain"
)

func TestCompileConfig_Paths(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "project")
	cfg := domain.NewCompileConfig(domain.DefaultSettings(root), false, false)

	assert.Equal(t, filepath.Join(root, "components", "todo.js"), cfg.EntryPath())
	assert.Equal(t, filepath.Join(root, "public", "js"), cfg.OutputDir())
	assert.Equal(t, filepath.Join(root, "public", "js", "bundle.js"), cfg.OutputPath())
	assert.Equal(t, "bundle.js.map", cfg.MapFile())
}

func TestCompileConfig_AbsolutePathsKept(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "project")
	out := filepath.Join(string(filepath.Separator), "srv", "static")

	s := domain.DefaultSettings(root)
	s.OutDir = out + string(filepath.Separator)
	cfg := domain.NewCompileConfig(s, true, false)

	assert.Equal(t, out, cfg.OutputDir())
	assert.True(t, cfg.Minify)
	assert.False(t, cfg.Watch)
}

func TestLookupTask(t *testing.T) {
	tests := []struct {
		name       string
		lookup     string
		wantFound  bool
		wantName   string
		wantMinify bool
		wantWatch  bool
	}{
		{name: "dev", lookup: "js", wantFound: true, wantName: "js"},
		{name: "release", lookup: "js-release", wantFound: true, wantName: "js-release", wantMinify: true},
		{name: "watch", lookup: "watchify", wantFound: true, wantName: "watchify", wantWatch: true},
		{name: "watch alias", lookup: "watch", wantFound: true, wantName: "watchify", wantWatch: true},
		{name: "unknown", lookup: "css", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, ok := domain.LookupTask(tt.lookup)
			require.Equal(t, tt.wantFound, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantName, task.Name)
			assert.Equal(t, tt.wantMinify, task.Minify)
			assert.Equal(t, tt.wantWatch, task.Watch)
		})
	}
}

func TestArtifact_Files(t *testing.T) {
	a := &domain.Artifact{Name: "bundle.js", Contents: []byte("code")}
	files := a.Files("bundle.js.map")
	require.Len(t, files, 1)
	assert.Equal(t, "bundle.js", files[0].Name)

	a.MapContents = []byte("{}")
	files = a.Files("bundle.js.map")
	require.Len(t, files, 2)
	assert.Equal(t, "bundle.js.map", files[1].Name)
	assert.Equal(t, []byte("{}"), files[1].Contents)
}

func TestRunOutcome_String(t *testing.T) {
	assert.Equal(t, "succeeded", domain.OutcomeSucceeded.String())
	assert.Equal(t, "failed", domain.OutcomeFailed.String())
	assert.Equal(t, "canceled", domain.OutcomeCanceled.String())
	assert.False(t, domain.RunReport{Outcome: domain.OutcomeCanceled}.Succeeded())
	assert.True(t, domain.RunReport{Outcome: domain.OutcomeSucceeded}.Succeeded())
	assert.False(t, domain.RunReport{Outcome: domain.OutcomeFailed}.Succeeded())
}
