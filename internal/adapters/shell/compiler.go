// Package shell runs external processes: the toolchain compiler and the
// compiled script itself.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler implements ports.Compiler by running the toolchain command.
type Compiler struct {
	output io.Writer
}

// NewCompiler creates a Compiler that sends all compiler output to w.
func NewCompiler(w io.Writer) *Compiler {
	return &Compiler{
		output: w,
	}
}

// Compile builds input into output. The compiler runs in the directory of
// input and writes to a temporary path that is renamed over output only on
// success. A failed build removes any executable left at output.
func (c *Compiler) Compile(ctx context.Context, tc domain.Toolchain, input, output string) error {
	tmp := output + "." + strconv.Itoa(os.Getpid()) + ".tmp"
	_ = os.Remove(tmp)

	args := tc.CompileArgs(input, tmp)
	if len(args) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrCompilerLaunchFailed, "compile command is empty"), "toolchain", tc.Name)
	}
	name := args[0]

	executable, err := resolveCompiler(name)
	if err != nil {
		return launchFailed(err, name)
	}

	cmd := exec.CommandContext(ctx, executable, args[1:]...) //nolint:gosec // configured toolchain
	cmd.Args[0] = name
	cmd.Dir = filepath.Dir(input)
	cmd.Env = os.Environ()
	cmd.Stdout = c.output
	cmd.Stderr = c.output

	if err := cmd.Run(); err != nil {
		_ = os.Remove(tmp)

		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return launchFailed(err, name)
		}

		_ = os.Remove(output)
		return zerr.With(
			zerr.With(zerr.Wrap(domain.ErrBuildFailed, "compiler reported errors"), "exit_code", exitErr.ExitCode()),
			"source", input,
		)
	}

	if err := os.Rename(tmp, output); err != nil {
		_ = os.Remove(output)
		return zerr.With(
			zerr.Wrap(errors.Join(domain.ErrBuildFailed, err), "compiler produced no executable"),
			"source", input,
		)
	}

	return nil
}

func launchFailed(err error, name string) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrCompilerLaunchFailed, err), "failed to start compiler"), "compiler", name)
}

// resolveCompiler finds name on PATH and makes the result absolute, since
// the compiler runs in the cache directory. Names containing a separator
// are used as given. A match relative to the working directory is
// rejected with exec.ErrDot.
func resolveCompiler(name string) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return name, nil
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", err
	}
	return filepath.Abs(path)
}
