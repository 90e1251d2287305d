package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"slices"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Runner = (*Relay)(nil)

// Relay implements ports.Runner. The child shares the relay's streams and
// its termination status is reported back unchanged.
type Relay struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewRelay creates a Relay wired to the given streams.
func NewRelay(stdin io.Reader, stdout, stderr io.Writer) *Relay {
	return &Relay{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run starts executable with argv0 as its program name and waits for it.
// Cancelling ctx does not kill the child or stop signal forwarding; while
// it runs, termination signals sent to this process are forwarded and
// interactive ones are left to the terminal's process group.
func (r *Relay) Run(_ context.Context, executable, argv0 string, args []string) (domain.Termination, error) {
	cmd := exec.Command(executable, args...) //nolint:gosec // compiled script
	cmd.Args[0] = argv0
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Start(); err != nil {
		return domain.Termination{}, zerr.With(
			zerr.Wrap(errors.Join(domain.ErrProgramLaunchFailed, err), "failed to start script"),
			"executable", executable,
		)
	}

	stop := forwardSignals(cmd.Process)
	err := cmd.Wait()
	stop()

	if err == nil {
		return domain.Exited(0), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return termination(exitErr.ProcessState), nil
	}

	return domain.Termination{}, zerr.With(
		zerr.Wrap(errors.Join(domain.ErrProgramLaunchFailed, err), "failed to wait for script"),
		"executable", executable,
	)
}

// forwardSignals relays termination signals to p until the returned
// function is called. The caller's context is not consulted: the first
// interrupt may cancel it while the child keeps running.
func forwardSignals(p *os.Process) func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, slices.Concat(relayedSignals, absorbedSignals)...)

	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case sig := <-ch:
				if slices.Contains(relayedSignals, sig) {
					if err := p.Signal(sig); err != nil && !errors.Is(err, os.ErrProcessDone) {
						return err
					}
				}
			}
		}
	})

	return func() {
		signal.Stop(ch)
		cancel()
		_ = g.Wait()
	}
}
