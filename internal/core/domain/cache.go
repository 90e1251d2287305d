// Package domain contains the core types of the kiln script runner.
package domain

import (
	"path/filepath"
	"runtime"
)

// Mode selects which preprocessing transform applies to a script.
type Mode uint8

const (
	// ModeRaw strips the shebang and otherwise passes the script through.
	ModeRaw Mode = iota
	// ModeMainSynthesis additionally injects a preamble and, when the script
	// declares no entry point, wraps its body in one.
	ModeMainSynthesis
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeRaw:
		return "raw"
	case ModeMainSynthesis:
		return "main"
	default:
		return "unknown"
	}
}

// ScriptIdentity is the canonical (absolute, symlink-resolved) path of a script.
type ScriptIdentity string

// CacheKey is the hex digest naming the cache entry of a script.
type CacheKey string

// CacheDir is the directory holding all cache entries.
// It is resolved once per invocation and passed by value.
type CacheDir string

// String returns the directory path.
func (d CacheDir) String() string {
	return string(d)
}

// CacheEntry names the pair of files cached for one script identity.
type CacheEntry struct {
	Key CacheKey
	// Base is the path shared by both files, without extension.
	Base string
	// Source is the preprocessed compiler input.
	Source string
	// Executable is the compiler output.
	Executable string
}

// Entry returns the cache entry for the given key and toolchain.
func (d CacheDir) Entry(key CacheKey, tc Toolchain) CacheEntry {
	base := filepath.Join(string(d), string(key))
	return CacheEntry{
		Key:        key,
		Base:       base,
		Source:     base + tc.SourceExt,
		Executable: base + ExecutableSuffix(),
	}
}

// ExecutableSuffix returns the platform suffix of executables.
func ExecutableSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}

// RemovedFile records a file deleted while clearing the cache.
type RemovedFile struct {
	Path string
	Size int64
}

// FailedFile records a file that could not be deleted.
type FailedFile struct {
	Path string
	Err  error
}

// ClearReport summarizes a cache clearing run.
type ClearReport struct {
	Removed []RemovedFile
	Failed  []FailedFile
	// IterErrors holds errors encountered while listing entries.
	IterErrors []error
}

// ReclaimedBytes returns the total size of removed files.
func (r ClearReport) ReclaimedBytes() uint64 {
	var total uint64
	for _, f := range r.Removed {
		if f.Size > 0 {
			total += uint64(f.Size)
		}
	}
	return total
}
