// Package commands implements the CLI commands for fold.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/fold/internal/app"
	"go.trai.ch/fold/internal/build"
	"go.trai.ch/fold/internal/core/domain"
)

// CLI represents the command line interface for fold.
type CLI struct {
	app     Application
	logs    JSONLogger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	RunTasks(ctx context.Context, names []string, opts app.RunOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// JSONLogger is a logger that can switch to JSON records.
type JSONLogger interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "fold",
		Short:         "Bundle a JavaScript entry module with source maps",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit log records as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if jsonLogs && c.logs != nil {
			c.logs.SetJSON(true)
		}
	}

	for _, spec := range domain.Tasks {
		rootCmd.AddCommand(c.newTaskCmd(spec))
	}
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// WithJSONLogger registers the logger switched by --json-logs.
func (c *CLI) WithJSONLogger(l JSONLogger) *CLI {
	c.logs = l
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	configPath, _ := cmd.Flags().GetString("config")
	strict, _ := cmd.Flags().GetBool("strict")
	return app.RunOptions{ConfigPath: configPath, Strict: strict}
}
