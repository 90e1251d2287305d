package domain

import "go.trai.ch/zerr"

var (
	// ErrNoScript is returned when neither a script path nor an administrative flag was given.
	ErrNoScript = zerr.New("no script specified")

	// ErrNoCacheDirectory is returned when neither a platform cache directory nor a home directory can be determined.
	ErrNoCacheDirectory = zerr.New("unable to find a usable cache directory")

	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheListFailed is returned when the cache directory cannot be opened for listing.
	ErrCacheListFailed = zerr.New("unable to read from cache directory")

	// ErrUnresolvablePath is returned when the script path cannot be made absolute or its symlinks resolved.
	ErrUnresolvablePath = zerr.New("unable to get absolute path for script")

	// ErrScriptReadFailed is returned when the script source cannot be read.
	ErrScriptReadFailed = zerr.New("unable to read input script")

	// ErrSourceWriteFailed is returned when the processed source cannot be written to the cache.
	ErrSourceWriteFailed = zerr.New("unable to write processed source")

	// ErrCompilerLaunchFailed is returned when the external compiler cannot be started.
	ErrCompilerLaunchFailed = zerr.New("unable to execute compiler")

	// ErrBuildFailed is returned when the compiler exits with a non-zero status.
	ErrBuildFailed = zerr.New("build failed")

	// ErrProgramLaunchFailed is returned when the compiled program cannot be started.
	ErrProgramLaunchFailed = zerr.New("unable to execute script")

	// ErrProgramSignaled is returned when the compiled program was terminated by a signal.
	ErrProgramSignaled = zerr.New("script terminated by signal")

	// ErrUnknownToolchain is returned when a requested toolchain is not defined.
	ErrUnknownToolchain = zerr.New("unknown toolchain")

	// ErrInvalidToolchain is returned when a toolchain definition is incomplete.
	ErrInvalidToolchain = zerr.New("invalid toolchain definition")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
