package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskNotFound is returned when a requested task is not registered.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrNoTasksSpecified is returned when the run command receives no task names.
	ErrNoTasksSpecified = zerr.New("no tasks specified")

	// ErrBuildExecutionFailed is returned when a strict run ends with a failed pipeline.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrBundleFailed is returned when the bundler cannot resolve or concatenate modules.
	ErrBundleFailed = zerr.New("failed to bundle modules")

	// ErrBundleEmpty is returned when the bundler reports success but produces no output.
	ErrBundleEmpty = zerr.New("bundler produced no output")

	// ErrBundlerCreateFailed is returned when the bundler cannot be constructed from the configuration.
	ErrBundlerCreateFailed = zerr.New("failed to create bundler")

	// ErrBundleCanceled is returned when a bundle run is canceled before it completes.
	ErrBundleCanceled = zerr.New("bundle canceled")

	// ErrMinifyFailed is returned when minification of the bundle fails.
	ErrMinifyFailed = zerr.New("failed to minify bundle")

	// ErrSourceMapMalformed is returned when a source map cannot be decoded.
	ErrSourceMapMalformed = zerr.New("malformed source map")

	// ErrSourceMapEncodeFailed is returned when a source map cannot be encoded.
	ErrSourceMapEncodeFailed = zerr.New("failed to encode source map")

	// ErrMetafileParseFailed is returned when the bundler metafile cannot be parsed.
	ErrMetafileParseFailed = zerr.New("failed to parse bundler metafile")

	// ErrOutputDirCreateFailed is returned when the output directory cannot be created.
	ErrOutputDirCreateFailed = zerr.New("failed to create output directory")

	// ErrOutputWriteFailed is returned when an output file cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output file")

	// ErrOutputHashFailed is returned when an existing output file cannot be hashed.
	ErrOutputHashFailed = zerr.New("failed to hash output file")

	// ErrOutputRemoveFailed is returned when a previous output file cannot be removed.
	ErrOutputRemoveFailed = zerr.New("failed to remove output file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidTarget is returned when the configured downleveling target is unknown.
	ErrInvalidTarget = zerr.New("invalid target, expected one of es5, es2015 ... es2022, esnext")

	// ErrInvalidMinifier is returned when the configured minifier is unknown.
	ErrInvalidMinifier = zerr.New("invalid minifier, expected 'esbuild' or 'tdewolff'")

	// ErrInvalidNotifyMode is returned when the configured notification mode is unknown.
	ErrInvalidNotifyMode = zerr.New("invalid notify mode, expected 'auto', 'always' or 'never'")

	// ErrInvalidDebounce is returned when the configured debounce window is not positive.
	ErrInvalidDebounce = zerr.New("debounce window must be positive")

	// ErrMissingEntry is returned when no entry module is configured.
	ErrMissingEntry = zerr.New("entry module is required")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrStoreCreateFailed is returned when the build info store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build info store directory")

	// ErrStoreReadFailed is returned when the build info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreUnmarshalFailed is returned when the build info cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build info")

	// ErrStoreMarshalFailed is returned when the build info cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build info")

	// ErrStoreWriteFailed is returned when the build info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")

	// ErrStoreInvalidTask is returned for task names that cannot name a build info file.
	ErrStoreInvalidTask = zerr.New("invalid task name for build info")

	// ErrStoreTaskMismatch is returned when a build info file records a different task.
	ErrStoreTaskMismatch = zerr.New("build info belongs to another task")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")

	// ErrNotifyFailed is returned when a desktop notification cannot be delivered.
	ErrNotifyFailed = zerr.New("failed to deliver notification")
)
