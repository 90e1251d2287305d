// Package cas implements the content addressed script cache: cache directory
// resolution, cache key derivation and cache administration.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScriptCache = (*Store)(nil)

// readDirBatch is the number of directory entries read per call while clearing.
const readDirBatch = 64

// Store implements ports.ScriptCache on the local filesystem.
type Store struct {
	userCacheDir func() (string, error)
	userHomeDir  func() (string, error)
}

// NewStore creates a Store that resolves directories through the os package.
func NewStore() *Store {
	return &Store{
		userCacheDir: os.UserCacheDir,
		userHomeDir:  os.UserHomeDir,
	}
}

// newStoreWithDirs creates a Store with injected directory lookups.
func newStoreWithDirs(cacheDir, homeDir func() (string, error)) *Store {
	return &Store{
		userCacheDir: cacheDir,
		userHomeDir:  homeDir,
	}
}

// Resolve returns the platform cache directory joined with the tool name,
// falling back to a dot directory under the home directory.
func (s *Store) Resolve() (domain.CacheDir, error) {
	if dir, err := s.userCacheDir(); err == nil && dir != "" {
		return domain.CacheDir(domain.PlatformCachePath(dir)), nil
	}

	if home, err := s.userHomeDir(); err == nil && home != "" {
		return domain.CacheDir(domain.HomeCachePath(home)), nil
	}

	return "", domain.ErrNoCacheDirectory
}

// Prepare creates dir and any missing parents.
func (s *Store) Prepare(dir domain.CacheDir) error {
	if err := os.MkdirAll(dir.String(), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrCacheDirCreateFailed, err), "failed to prepare cache"), "path", dir.String())
	}
	return nil
}

// Key resolves scriptPath to its canonical form and digests the platform
// native bytes of that path.
func (s *Store) Key(scriptPath string) (domain.ScriptIdentity, domain.CacheKey, error) {
	abs, err := filepath.Abs(scriptPath)
	if err != nil {
		return "", "", unresolvable(err, scriptPath)
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", "", unresolvable(err, scriptPath)
	}

	return domain.ScriptIdentity(canonical), Digest(nativePathBytes(canonical)), nil
}

func unresolvable(err error, path string) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrUnresolvablePath, err), "failed to resolve script"), "path", path)
}

// Digest returns the lowercase hex SHA-256 of b.
func Digest(b []byte) domain.CacheKey {
	sum := sha256.Sum256(b)
	return domain.CacheKey(hex.EncodeToString(sum[:]))
}

// Clear deletes every regular file directly inside dir. Subdirectories are
// left untouched. Per-file failures and iteration errors are collected in
// the report; only a failure to open dir is returned as an error.
func (s *Store) Clear(dir domain.CacheDir) (domain.ClearReport, error) {
	var report domain.ClearReport

	//nolint:gosec // Path is the resolved cache directory
	f, err := os.Open(dir.String())
	if err != nil {
		return report, zerr.With(zerr.Wrap(errors.Join(domain.ErrCacheListFailed, err), "failed to clear cache"), "path", dir.String())
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	for {
		entries, err := f.ReadDir(readDirBatch)
		for _, entry := range entries {
			s.clearEntry(filepath.Join(dir.String(), entry.Name()), &report)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			report.IterErrors = append(report.IterErrors, err)
			break
		}
	}

	return report, nil
}

func (s *Store) clearEntry(path string, report *domain.ClearReport) {
	info, err := os.Stat(path)
	if err != nil {
		report.IterErrors = append(report.IterErrors, err)
		return
	}
	if !info.Mode().IsRegular() {
		return
	}

	if err := os.Remove(path); err != nil {
		report.Failed = append(report.Failed, domain.FailedFile{Path: path, Err: err})
		return
	}
	report.Removed = append(report.Removed, domain.RemovedFile{Path: path, Size: info.Size()})
}
