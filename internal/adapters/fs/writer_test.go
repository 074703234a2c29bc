package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fold/internal/adapters/fs"
	"go.trai.ch/fold/internal/core/domain"
)

func files(bundle, sourceMap string) []domain.OutputFile {
	return []domain.OutputFile{
		{Name: "bundle.js", Contents: []byte(bundle)},
		{Name: "bundle.js.map", Contents: []byte(sourceMap)},
	}
}

func TestWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public", "js")
	w := fs.NewWriter()

	digests, err := w.Write(dir, files("var a;\n", "{}"))
	require.NoError(t, err)

	bundlePath := filepath.Join(dir, "bundle.js")
	mapPath := filepath.Join(dir, "bundle.js.map")
	assert.Equal(t, map[string]string{
		bundlePath: fs.Digest([]byte("var a;\n")),
		mapPath:    fs.Digest([]byte("{}")),
	}, digests)

	got, err := os.ReadFile(bundlePath)
	require.NoError(t, err)
	assert.Equal(t, "var a;\n", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temporary files may be left behind")
}

func TestWriter_SkipsUnchanged(t *testing.T) {
	dir := t.TempDir()
	w := fs.NewWriter()

	_, err := w.Write(dir, files("var a;\n", "{}"))
	require.NoError(t, err)

	bundlePath := filepath.Join(dir, "bundle.js")
	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(bundlePath, past, past))

	_, err = w.Write(dir, files("var a;\n", "{\"version\":3}"))
	require.NoError(t, err)

	info, err := os.Stat(bundlePath)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past), "unchanged bundle must not be rewritten")

	got, err := os.ReadFile(filepath.Join(dir, "bundle.js.map"))
	require.NoError(t, err)
	assert.Equal(t, "{\"version\":3}", string(got))
}

func TestWriter_DirCreateFailed(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "public")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, err := fs.NewWriter().Write(filepath.Join(blocker, "js"), files("", ""))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrOutputDirCreateFailed.Error())
}

func TestWriter_Remove(t *testing.T) {
	dir := t.TempDir()
	w := fs.NewWriter()

	digests, err := w.Write(dir, files("var a;\n", "{}"))
	require.NoError(t, err)

	paths := []string{
		filepath.Join(dir, "bundle.js"),
		filepath.Join(dir, "bundle.js.map"),
		filepath.Join(dir, "missing.js"),
	}
	removed, err := w.Remove(paths)
	require.NoError(t, err)
	assert.Equal(t, paths[:2], removed)

	for p := range digests {
		_, err := os.Stat(p)
		assert.True(t, os.IsNotExist(err))
	}
}

func TestComputeFileHash(t *testing.T) {
	dir := t.TempDir()

	digest, err := fs.ComputeFileHash(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, digest)

	path := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))
	digest, err = fs.ComputeFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, fs.Digest([]byte("content")), digest)
	assert.Len(t, digest, 16)
}
