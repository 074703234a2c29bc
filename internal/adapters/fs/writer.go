// Package fs writes and removes build outputs.
package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/fold/internal/core/domain"
	"go.trai.ch/fold/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputWriter = (*Writer)(nil)

// Writer materializes output files atomically. A file whose content digest is
// unchanged is left untouched so that file watchers downstream see no event.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write implements ports.OutputWriter. The returned map holds every file in files,
// whether it was rewritten or already up to date.
func (w *Writer) Write(dir string, files []domain.OutputFile) (map[string]string, error) {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOutputDirCreateFailed.Error()), "dir", dir)
	}

	digests := make(map[string]string, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		digest := Digest(f.Contents)

		existing, err := ComputeFileHash(path)
		if err != nil {
			return nil, err
		}
		if existing != digest {
			if err := writeAtomic(path, f.Contents); err != nil {
				return nil, err
			}
		}
		digests[path] = digest
	}
	return digests, nil
}

// Remove implements ports.OutputWriter. Missing files are not an error.
func (w *Writer) Remove(paths []string) ([]string, error) {
	var removed []string
	for _, p := range paths {
		err := os.Remove(p)
		switch {
		case err == nil:
			removed = append(removed, p)
		case errors.Is(err, iofs.ErrNotExist):
		default:
			return removed, zerr.With(zerr.Wrap(err, domain.ErrOutputRemoveFailed.Error()), "path", p)
		}
	}
	return removed, nil
}

// Digest returns the hex encoded XXHash of data.
func Digest(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// ComputeFileHash returns the digest of the file at path, or "" if it does not exist.
func ComputeFileHash(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrOutputHashFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrOutputHashFailed.Error()), "path", path)
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// writeAtomic writes data to a temporary file next to path and renames it into place.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		_ = tmp.Close()
		cleanup()
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		cleanup()
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	return nil
}
