package railway

// Config is the [railway] section of the configuration
type Config struct {
	Format   string `koanf:"format" toml:"format" yaml:"format"`
	Symbol   string `koanf:"symbol" toml:"symbol" yaml:"symbol"`
	Style    string `koanf:"style" toml:"style" yaml:"style"`
	Disabled bool   `koanf:"disabled" toml:"disabled" yaml:"disabled"`
	ShellMsg string `koanf:"shell_msg" toml:"shell_msg" yaml:"shell_msg"`
}

// DefaultConfig returns the configuration used when the section is absent.
// The trailing space in the symbol is part of the value and must be kept.
func DefaultConfig() Config {
	return Config{
		Format:   `on [$symbol$project_name( \($environment_name\)) $shell]($style)`,
		Symbol:   "🚅 ",
		Style:    "bold purple",
		Disabled: false,
		ShellMsg: "$",
	}
}
