package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// Compiler builds a processed source file into an executable.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile runs the toolchain's compile command. It returns an error
	// wrapping domain.ErrCompilerLaunchFailed when the compiler cannot be
	// started and domain.ErrBuildFailed when it rejects the input.
	Compile(ctx context.Context, tc domain.Toolchain, input, output string) error
}
