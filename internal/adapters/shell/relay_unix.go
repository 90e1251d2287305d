//go:build unix

package shell

import (
	"os"
	"syscall"

	"go.trai.ch/kiln/internal/core/domain"
)

var (
	relayedSignals  = []os.Signal{syscall.SIGTERM, syscall.SIGHUP}
	absorbedSignals = []os.Signal{syscall.SIGINT, syscall.SIGQUIT}
)

func termination(state *os.ProcessState) domain.Termination {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok {
		return domain.Exited(state.ExitCode())
	}
	if ws.Signaled() {
		return domain.KilledBy(int(ws.Signal()))
	}
	return domain.Exited(ws.ExitStatus())
}
