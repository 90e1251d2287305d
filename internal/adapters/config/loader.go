// Package config provides the configuration loader for kiln.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML or TOML file in the
// user's configuration directory.
type Loader struct {
	Logger    ports.Logger
	FS        FileSystem
	ConfigDir func() (string, error)
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:    logger,
		FS:        NewOSFS(),
		ConfigDir: os.UserConfigDir,
	}
}

// Format identifies the syntax of a configuration file.
type Format string

const (
	// FormatYAML is used for config.yaml.
	FormatYAML Format = "yaml"
	// FormatTOML is used for config.toml.
	FormatTOML Format = "toml"
)

// Load returns the built-in configuration with the user's configuration
// file applied on top. A missing file is not an error.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	configPath, format, found := l.findConfiguration()
	if !found {
		return cfg, nil
	}

	var file Configfile
	if err := l.readAndUnmarshal(configPath, format, &file); err != nil {
		return nil, err
	}

	if err := apply(cfg, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return cfg, nil
}

func (l *Loader) findConfiguration() (string, Format, bool) {
	userDir, err := l.ConfigDir()
	if err != nil || userDir == "" {
		return "", "", false
	}
	dir := domain.ConfigDirPath(userDir)

	yamlPath := filepath.Join(dir, domain.ConfigFileYAML)
	tomlPath := filepath.Join(dir, domain.ConfigFileTOML)

	_, yamlErr := l.FS.Stat(yamlPath)
	_, tomlErr := l.FS.Stat(tomlPath)

	switch {
	case yamlErr == nil:
		if tomlErr == nil {
			l.Logger.Warn(fmt.Sprintf("both %s and %s exist, ignoring %s",
				domain.ConfigFileYAML, domain.ConfigFileTOML, domain.ConfigFileTOML))
		}
		return yamlPath, FormatYAML, true
	case tomlErr == nil:
		return tomlPath, FormatTOML, true
	default:
		return "", "", false
	}
}

func (l *Loader) readAndUnmarshal(configPath string, format Format, target *Configfile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "failed to read config"), "path", configPath)
	}

	var parseErr error
	switch format {
	case FormatTOML:
		parseErr = toml.Unmarshal(data, target)
	default:
		parseErr = yaml.Unmarshal(data, target)
	}
	if parseErr != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, parseErr), "failed to parse config"), "path", configPath)
	}

	return nil
}

// apply merges the file into cfg. Declaring a built-in toolchain overrides
// only the fields given.
func apply(cfg *domain.Config, file *Configfile) error {
	names := make([]string, 0, len(file.Toolchains))
	for name := range file.Toolchains {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		override, err := toToolchain(name, file.Toolchains[name])
		if err != nil {
			return err
		}

		tc := cfg.Toolchains[name].Merge(override)
		if err := tc.Validate(); err != nil {
			return err
		}
		cfg.Toolchains[name] = tc
	}

	if file.Default != "" {
		cfg.Default = file.Default
	}
	if _, ok := cfg.Toolchains[cfg.Default]; !ok {
		return zerr.With(zerr.Wrap(domain.ErrUnknownToolchain, "default toolchain is not defined"), "toolchain", cfg.Default)
	}

	return nil
}

func toToolchain(name string, dto *ToolchainDTO) (domain.Toolchain, error) {
	tc := domain.Toolchain{Name: name}
	if dto == nil {
		return tc, nil
	}

	tc.Extensions = dto.Extensions
	tc.SourceExt = dto.Source
	tc.Command = dto.Command
	tc.EntryPoint = dto.EntryPoint
	tc.Preamble = dto.Preamble
	tc.LineDirective = dto.LineDirective
	tc.Dialect = dto.Dialect

	switch len(dto.Wrap) {
	case 0:
	case 2:
		tc.WrapOpen, tc.WrapClose = dto.Wrap[0], dto.Wrap[1]
	default:
		return tc, zerr.With(
			zerr.Wrap(domain.ErrInvalidToolchain, "wrap needs an opening and a closing line"),
			"toolchain", name,
		)
	}

	return tc, nil
}
