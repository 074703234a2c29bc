package domain

import "path/filepath"

const (
	// FoldDirName is the name of the internal state directory.
	FoldDirName = ".fold"

	// StoreDirName is the name of the build info store directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "fold.yaml"

	// DefaultEntry is the entry module compiled when no configuration overrides it.
	DefaultEntry = "./components/todo.js"

	// DefaultOutDir is the directory the bundle and its source map are written to.
	DefaultOutDir = "./public/js"

	// DefaultOutFile is the file name of the bundle.
	DefaultOutFile = "bundle.js"

	// SourceMapExt is appended to the bundle file name to name the source map.
	SourceMapExt = ".map"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultFoldPath returns the default root directory for fold metadata.
func DefaultFoldPath() string {
	return FoldDirName
}

// DefaultStorePath returns the default path for the build info store.
// It joins .fold and store.
func DefaultStorePath() string {
	return filepath.Join(FoldDirName, StoreDirName)
}
