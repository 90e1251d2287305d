package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// Runner executes a compiled script and reports how it terminated.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run starts executable with argv0 as its program name and args as the
	// remaining arguments, and blocks until it exits.
	Run(ctx context.Context, executable, argv0 string, args []string) (domain.Termination, error)
}
