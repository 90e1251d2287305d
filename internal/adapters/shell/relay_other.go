//go:build !unix

package shell

import (
	"os"

	"go.trai.ch/kiln/internal/core/domain"
)

var (
	relayedSignals  []os.Signal
	absorbedSignals = []os.Signal{os.Interrupt}
)

// termination reports a child that did not exit normally as killed by an
// unknown signal.
func termination(state *os.ProcessState) domain.Termination {
	if code := state.ExitCode(); code >= 0 {
		return domain.Exited(code)
	}
	return domain.KilledBy(0)
}
