// Package cas implements the build info store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/fold/internal/core/domain"
	"go.trai.ch/fold/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildInfoStore = (*Store)(nil)

// Store keeps one JSON record per task, <root>/.fold/store/<task>.json. Task names come
// from the fixed registry, so they are used as file names directly.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the last recorded run of taskName, or nil when the task never succeeded.
func (s *Store) Get(root, taskName string) (*domain.BuildInfo, error) {
	path, err := recordPath(root, taskName)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // Path is the store directory joined with a validated task name
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "task", taskName)
	}

	var info domain.BuildInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "task", taskName)
	}
	if info.TaskName != taskName {
		return nil, zerr.With(zerr.With(domain.ErrStoreTaskMismatch, "task", taskName), "recorded", info.TaskName)
	}

	return &info, nil
}

// Put replaces the record of info.TaskName. The record is written to a temporary file
// and renamed into place so readers never see a partial record.
func (s *Store) Put(root string, info domain.BuildInfo) error {
	path, err := recordPath(root, info.TaskName)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	tmp, err := os.CreateTemp(dir, "."+info.TaskName+".*.tmp")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(append(data, '\n'))
	closeErr := tmp.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "task", info.TaskName)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "task", info.TaskName)
	}

	return nil
}

func recordPath(root, taskName string) (string, error) {
	if taskName == "" || taskName != filepath.Base(taskName) || strings.HasPrefix(taskName, ".") {
		return "", zerr.With(domain.ErrStoreInvalidTask, "task", taskName)
	}
	return filepath.Join(root, domain.DefaultStorePath(), taskName+".json"), nil
}
