package config

// Configfile represents the structure of config.yaml and config.toml.
type Configfile struct {
	Default    string                   `yaml:"default"    toml:"default"`
	Toolchains map[string]*ToolchainDTO `yaml:"toolchains" toml:"toolchains"`
}

// ToolchainDTO represents a toolchain definition in the configuration.
type ToolchainDTO struct {
	Extensions    []string `yaml:"extensions"    toml:"extensions"`
	Source        string   `yaml:"source"        toml:"source"`
	Command       []string `yaml:"command"       toml:"command"`
	EntryPoint    string   `yaml:"entrypoint"    toml:"entrypoint"`
	Preamble      []string `yaml:"preamble"      toml:"preamble"`
	Wrap          []string `yaml:"wrap"          toml:"wrap"`
	LineDirective string   `yaml:"linedirective" toml:"linedirective"`
	Dialect       string   `yaml:"dialect"       toml:"dialect"`
}
