// Package main is the entry point for the kiln script runner.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/cmd/kiln/commands"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	_ "go.trai.ch/kiln/internal/wiring"
)

// outputSetter is implemented by loggers whose destination can be redirected.
type outputSetter interface {
	SetOutput(io.Writer)
}

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return domain.ExitUsage
	}
	defer cleanup()

	if w, ok := components.Logger.(outputSetter); ok {
		w.SetOutput(stderr)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		return exitCode(err, components.Logger)
	}
	return cli.ExitCode()
}

// exitCode maps a failed execution to the process exit code, logging
// errors that have not been reported yet.
func exitCode(err error, log ports.Logger) int {
	switch {
	case errors.Is(err, domain.ErrNoScript):
		return domain.ExitUsage
	case errors.Is(err, domain.ErrProgramSignaled):
		return domain.ExitSignaled
	case errors.Is(err, domain.ErrBuildFailed):
		log.Error(err)
		return domain.ExitBuildFailed
	default:
		log.Error(err)
		return domain.ExitUsage
	}
}
