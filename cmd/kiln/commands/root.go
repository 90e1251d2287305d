// Package commands implements the CLI of the kiln script runner.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/build"
	"go.trai.ch/kiln/internal/core/domain"
)

// CLI represents the command line interface for kiln.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	exitCode int
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, script string, args []string, opts app.RunOptions) (domain.Termination, error)
	ShowCacheDir(ctx context.Context, w io.Writer) error
	ClearCacheDir(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "kiln [flags] path-to-script [args to script]",
		Short: "Compile, cache and run single-file programs",
		Long: "kiln compiles a script with its toolchain, caches the executable " +
			"under the script's canonical path and runs it with the remaining arguments.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runRoot,
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

	// Everything after the script path belongs to the script.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.Flags().BoolP("main", "m", false, "Synthesize an entry point and common imports")
	rootCmd.Flags().StringP("lang", "l", "", "Toolchain to compile with (default: by extension)")
	rootCmd.Flags().Bool("show-cache-dir", false, "Print the cache directory, creating it if needed")
	rootCmd.Flags().Bool("clear-cache-dir", false, "Delete the cached files")

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	show, _ := cmd.Flags().GetBool("show-cache-dir")
	clearCache, _ := cmd.Flags().GetBool("clear-cache-dir")

	switch {
	case show:
		return c.app.ShowCacheDir(cmd.Context(), cmd.OutOrStdout())
	case clearCache:
		return c.app.ClearCacheDir(cmd.Context())
	case len(args) == 0:
		_, _ = io.WriteString(cmd.ErrOrStderr(), cmd.UsageString())
		return domain.ErrNoScript
	}

	return c.runScript(cmd, args[0], args[1:])
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// ExitCode returns the exit code of the script run by the last Execute.
func (c *CLI) ExitCode() int {
	return c.exitCode
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
