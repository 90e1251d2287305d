package domain

import "path/filepath"

const (
	// AppName is the name of the tool and of its platform cache subdirectory.
	AppName = "kiln"

	// HomeDirName is the dot directory used under the home directory when no
	// platform cache directory is available.
	HomeDirName = ".kiln"

	// CacheDirName is the name of the cache directory below HomeDirName.
	CacheDirName = "cache"

	// ConfigFileYAML is the name of the YAML configuration file.
	ConfigFileYAML = "config.yaml"

	// ConfigFileTOML is the name of the TOML configuration file.
	ConfigFileTOML = "config.toml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission of compiled executables (rwxr-xr-x).
	ExecPerm = 0o755
)

// PlatformCachePath returns the cache directory below a platform cache root.
func PlatformCachePath(userCacheDir string) string {
	return filepath.Join(userCacheDir, AppName)
}

// HomeCachePath returns the fallback cache directory below a home directory.
// It joins .kiln and cache.
func HomeCachePath(home string) string {
	return filepath.Join(home, HomeDirName, CacheDirName)
}

// ConfigDirPath returns the directory holding the configuration files below a
// platform config root.
func ConfigDirPath(userConfigDir string) string {
	return filepath.Join(userConfigDir, AppName)
}
