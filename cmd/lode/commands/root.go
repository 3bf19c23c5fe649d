// Package commands implements the CLI commands for lode.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/lode/internal/app"
	"go.trai.ch/lode/internal/build"
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
)

// CLI represents the command line interface for lode.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath  string
	jsonLogs    bool
	concurrency int
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.IndexOptions) (*app.Index, error)
	Index(ctx context.Context, opts app.IndexOptions) (*app.Index, error)
	Lookup(idx *app.Index, targetName string) (*domain.TargetDefinition, []domain.Dependency, error)
	Logger() ports.Logger
}

type jsonSwitch interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lode",
		Short:         "Inspect the dependencies declared by a manifest's targets",
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", ".", "Manifest file, or the directory containing it")
	flags.BoolVar(&c.jsonLogs, "json-logs", false, "Emit logs as JSON")
	flags.IntVarP(&c.concurrency, "concurrency", "j", 1, "Number of targets read in parallel while indexing")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if !c.jsonLogs {
			return
		}
		if l, ok := c.app.Logger().(jsonSwitch); ok {
			l.SetJSON(true)
		}
	}

	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newTargetsCmd())
	rootCmd.AddCommand(c.newIndexCmd())
	rootCmd.AddCommand(c.newVersionCmd())

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

func (c *CLI) options() app.IndexOptions {
	return app.IndexOptions{
		Path:        c.configPath,
		Concurrency: c.concurrency,
	}
}
