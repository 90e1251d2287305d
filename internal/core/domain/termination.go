package domain

const (
	// ExitUsage is the exit code for usage, cache directory and launch errors.
	ExitUsage = 1
	// ExitBuildFailed is the exit code when the compiler rejects the script.
	ExitBuildFailed = 3
	// ExitSignaled is the exit code when the compiled program was killed by a signal.
	ExitSignaled = 4
)

// Termination describes how a relayed program ended.
type Termination struct {
	// Code is the exit status. It is meaningless when Signaled is set.
	Code int
	// Signaled reports whether the program was terminated by a signal.
	Signaled bool
	// Signal is the signal number, or 0 when the platform does not expose it.
	Signal int
}

// Exited returns a Termination for a normal exit with the given code.
func Exited(code int) Termination {
	return Termination{Code: code}
}

// KilledBy returns a Termination for a program killed by the given signal.
func KilledBy(sig int) Termination {
	return Termination{Signaled: true, Signal: sig}
}
