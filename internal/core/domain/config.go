package domain

import (
	"path/filepath"
	"time"
)

// NotifyMode controls whether failures are also sent as desktop notifications.
type NotifyMode string

const (
	// NotifyAuto sends desktop notifications only in interactive, non-CI sessions.
	NotifyAuto NotifyMode = "auto"
	// NotifyAlways always sends desktop notifications.
	NotifyAlways NotifyMode = "always"
	// NotifyNever only reports failures on the console.
	NotifyNever NotifyMode = "never"
)

const (
	// MinifierEsbuild minifies with esbuild and chains the source map through.
	MinifierEsbuild = "esbuild"
	// MinifierTdewolff minifies with tdewolff/minify, which cannot carry mappings.
	MinifierTdewolff = "tdewolff"

	// DefaultTarget is the language level bundles are downleveled to.
	DefaultTarget = "es2015"

	// DefaultDebounce is the window used to coalesce file events in watch mode.
	DefaultDebounce = 50 * time.Millisecond
)

// Settings holds the project level build settings. They come from fold.yaml when
// present and from the defaults otherwise.
type Settings struct {
	// WorkDir is the absolute project root every other path is relative to.
	WorkDir  string
	Entry    string
	OutDir   string
	OutFile  string
	Target   string
	Minifier string
	Notify   NotifyMode
	Debounce time.Duration
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings(workDir string) Settings {
	return Settings{
		WorkDir:  workDir,
		Entry:    DefaultEntry,
		OutDir:   DefaultOutDir,
		OutFile:  DefaultOutFile,
		Target:   DefaultTarget,
		Minifier: MinifierEsbuild,
		Notify:   NotifyAuto,
		Debounce: DefaultDebounce,
	}
}

// CompileConfig is the immutable configuration of a single task invocation.
type CompileConfig struct {
	Settings
	Minify bool
	Watch  bool
}

// NewCompileConfig derives the configuration of one invocation from the settings.
func NewCompileConfig(s Settings, minify, watch bool) CompileConfig {
	return CompileConfig{Settings: s, Minify: minify, Watch: watch}
}

// EntryPath returns the absolute path of the entry module.
func (c CompileConfig) EntryPath() string {
	return c.abs(c.Entry)
}

// OutputDir returns the absolute path of the output directory.
func (c CompileConfig) OutputDir() string {
	return c.abs(c.OutDir)
}

// OutputPath returns the absolute path of the bundle file.
func (c CompileConfig) OutputPath() string {
	return filepath.Join(c.OutputDir(), c.OutFile)
}

// MapFile returns the file name of the source map written next to the bundle.
func (c CompileConfig) MapFile() string {
	return c.OutFile + SourceMapExt
}

func (c CompileConfig) abs(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.WorkDir, p)
}
