// Package build holds the version information reported by kiln --version.
package build

// Set with -ldflags "-X go.trai.ch/kiln/internal/build.Version=..." by release builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
