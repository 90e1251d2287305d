package ports

import "go.trai.ch/kiln/internal/core/domain"

// ScriptCache resolves the cache directory and derives cache keys.
//
//go:generate mockgen -source=script_cache.go -destination=mocks/mock_script_cache.go -package=mocks
type ScriptCache interface {
	// Resolve returns the cache directory without creating it.
	Resolve() (domain.CacheDir, error)

	// Prepare creates the cache directory, including missing parents.
	Prepare(dir domain.CacheDir) error

	// Key canonicalizes the script path and digests it into a cache key.
	Key(scriptPath string) (domain.ScriptIdentity, domain.CacheKey, error)

	// Clear removes the regular files directly inside dir.
	// It fails only when dir cannot be listed.
	Clear(dir domain.CacheDir) (domain.ClearReport, error)
}
