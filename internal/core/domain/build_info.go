package domain

import "time"

// BuildInfo records the last successful run of a task: the bundle and source map it
// produced and the digest of every file it wrote.
type BuildInfo struct {
	TaskName string `json:"task"`
	// Bundle and SourceMap are the absolute paths of the written pair.
	Bundle    string `json:"bundle,omitzero"`
	SourceMap string `json:"source_map,omitzero"`
	Minified  bool   `json:"minified,omitzero"`
	// Outputs maps every written path to its xxhash digest.
	Outputs   map[string]string `json:"outputs,omitzero"`
	Elapsed   time.Duration     `json:"elapsed,omitzero"`
	Timestamp time.Time         `json:"timestamp,omitzero"`
}
