package domain

import "slices"

// Task names exposed by the registry.
const (
	TaskDev     = "js"
	TaskRelease = "js-release"
	TaskWatch   = "watchify"
)

// TaskSpec binds a task name to a fixed compile mode.
type TaskSpec struct {
	Name    string
	Short   string
	Long    string
	Minify  bool
	Watch   bool
	Aliases []string
}

// Tasks is the registry of named tasks in the order they are listed.
var Tasks = []TaskSpec{
	{
		Name:  TaskDev,
		Short: "Bundle the entry module for development",
		Long: "Resolves the entry module's dependencies and compiles them into a single bundle " +
			"with an external source map. The bundle is not minified so debuggers can restore " +
			"variable names through the source map.",
	},
	{
		Name:   TaskRelease,
		Short:  "Bundle and minify the entry module for release",
		Long:   "Resolves the entry module's dependencies and compiles them into a single minified bundle with an external source map.",
		Minify: true,
	},
	{
		Name:    TaskWatch,
		Short:   "Bundle the entry module and rebuild on change",
		Long:    "Builds once, then watches every module the bundle requires and rebuilds incrementally whenever one changes.",
		Watch:   true,
		Aliases: []string{"watch"},
	},
}

// LookupTask returns the task registered under name or one of its aliases.
func LookupTask(name string) (TaskSpec, bool) {
	for _, t := range Tasks {
		if t.Name == name || slices.Contains(t.Aliases, name) {
			return t, true
		}
	}
	return TaskSpec{}, false
}
