// Package config provides the configuration loader for fold.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/fold/internal/core/domain"
	"go.trai.ch/fold/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// targets lists the downleveling targets understood by the bundler adapter.
var targets = map[string]bool{
	"es5": true, "es2015": true, "es2016": true, "es2017": true, "es2018": true,
	"es2019": true, "es2020": true, "es2021": true, "es2022": true, "esnext": true,
}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration file at path (relative paths resolve against cwd)
// and merges it over the default settings. A missing file is not an error.
func (l *Loader) Load(cwd, path string) (domain.Settings, error) {
	root, err := filepath.Abs(cwd)
	if err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "cwd", cwd)
	}

	if path == "" {
		path = domain.ConfigFileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	settings := domain.DefaultSettings(root)

	var file Foldfile
	found, err := readAndUnmarshalYAML(path, &file)
	if err != nil {
		return domain.Settings{}, err
	}
	if !found {
		return settings, nil
	}

	// Paths in the file are relative to the directory holding it.
	settings.WorkDir = filepath.Dir(path)

	if err := apply(&settings, &file); err != nil {
		return domain.Settings{}, zerr.With(err, "file", path)
	}
	return settings, nil
}

func apply(s *domain.Settings, f *Foldfile) error {
	if f.Entry != "" {
		s.Entry = f.Entry
	}
	if f.OutDir != "" {
		s.OutDir = f.OutDir
	}
	if f.OutFile != "" {
		s.OutFile = f.OutFile
	}

	if f.Target != "" {
		target := strings.ToLower(f.Target)
		if !targets[target] {
			return zerr.With(domain.ErrInvalidTarget, "target", f.Target)
		}
		s.Target = target
	}

	switch f.Minifier {
	case "":
	case domain.MinifierEsbuild, domain.MinifierTdewolff:
		s.Minifier = f.Minifier
	default:
		return zerr.With(domain.ErrInvalidMinifier, "minifier", f.Minifier)
	}

	switch mode := domain.NotifyMode(f.Notify); mode {
	case "":
	case domain.NotifyAuto, domain.NotifyAlways, domain.NotifyNever:
		s.Notify = mode
	default:
		return zerr.With(domain.ErrInvalidNotifyMode, "notify", f.Notify)
	}

	if f.Debounce != "" {
		d, err := time.ParseDuration(f.Debounce)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidDebounce.Error()), "debounce", f.Debounce)
		}
		if d <= 0 {
			return zerr.With(domain.ErrInvalidDebounce, "debounce", f.Debounce)
		}
		s.Debounce = d
	}

	return nil
}

// readAndUnmarshalYAML decodes path into v. It reports false when the file does not exist.
func readAndUnmarshalYAML(path string, v any) (bool, error) {
	//nolint:gosec // Path is provided by the user on purpose
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "file", path)
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "file", path)
	}
	return true, nil
}
