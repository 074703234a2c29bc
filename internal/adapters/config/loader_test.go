package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fold/internal/adapters/config"
	"go.trai.ch/fold/internal/core/domain"
)

func TestLoader_Load_MissingFileUsesDefaults(t *testing.T) {
	root := t.TempDir()

	settings, err := config.NewLoader().Load(root, "")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings(root), settings)
}

func TestLoader_Load_Overrides(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, `
version: "1"
entry: ./src/main.js
outdir: ./dist
outfile: app.js
target: ES2020
minifier: tdewolff
notify: never
debounce: 200ms
`)

	settings, err := config.NewLoader().Load(root, "")
	require.NoError(t, err)

	assert.Equal(t, root, settings.WorkDir)
	assert.Equal(t, "./src/main.js", settings.Entry)
	assert.Equal(t, "./dist", settings.OutDir)
	assert.Equal(t, "app.js", settings.OutFile)
	assert.Equal(t, "es2020", settings.Target)
	assert.Equal(t, domain.MinifierTdewolff, settings.Minifier)
	assert.Equal(t, domain.NotifyNever, settings.Notify)
	assert.Equal(t, 200*time.Millisecond, settings.Debounce)
}

func TestLoader_Load_PartialKeepsDefaults(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "outfile: app.js\n")

	settings, err := config.NewLoader().Load(root, "")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultEntry, settings.Entry)
	assert.Equal(t, domain.DefaultOutDir, settings.OutDir)
	assert.Equal(t, "app.js", settings.OutFile)
	assert.Equal(t, domain.DefaultTarget, settings.Target)
	assert.Equal(t, domain.DefaultDebounce, settings.Debounce)
}

func TestLoader_Load_WorkDirFollowsConfigFile(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "web")
	require.NoError(t, os.Mkdir(sub, domain.DirPerm))
	createFile(t, sub, "build.yaml", "entry: ./index.js\n")

	settings, err := config.NewLoader().Load(root, filepath.Join("web", "build.yaml"))
	require.NoError(t, err)

	assert.Equal(t, sub, settings.WorkDir)
	assert.Equal(t, "./index.js", settings.Entry)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "invalid yaml", content: "entry: [unclosed", wantErr: domain.ErrConfigParseFailed.Error()},
		{name: "unknown target", content: "target: es3", wantErr: domain.ErrInvalidTarget.Error()},
		{name: "unknown minifier", content: "minifier: uglify", wantErr: domain.ErrInvalidMinifier.Error()},
		{name: "unknown notify mode", content: "notify: sometimes", wantErr: domain.ErrInvalidNotifyMode.Error()},
		{name: "unparsable debounce", content: "debounce: soon", wantErr: domain.ErrInvalidDebounce.Error()},
		{name: "negative debounce", content: "debounce: -1s", wantErr: domain.ErrInvalidDebounce.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			createFile(t, root, domain.ConfigFileName, tt.content)

			_, err := config.NewLoader().Load(root, "")
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoader_Load_UnreadableFile(t *testing.T) {
	root := t.TempDir()
	// A directory where the file should be cannot be read as a file.
	require.NoError(t, os.Mkdir(filepath.Join(root, domain.ConfigFileName), domain.DirPerm))

	_, err := config.NewLoader().Load(root, "")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), domain.FilePerm)
	require.NoError(t, err)
}
