package config

import (
	"os"
	"strings"
	"time"

	"github.com/arthur-debert/promptline/pkg/errors"
	"github.com/arthur-debert/promptline/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override root keys
const EnvPrefix = "PROMPTLINE_"

// Config is the root configuration. Module sections are kept raw and
// decoded by each module against its own defaults.
type Config struct {
	Modules        []string `koanf:"modules" toml:"modules" yaml:"modules"`
	AddNewline     bool     `koanf:"add_newline" toml:"add_newline" yaml:"add_newline"`
	CommandTimeout int      `koanf:"command_timeout" toml:"command_timeout" yaml:"command_timeout"`
	Strict         bool     `koanf:"strict" toml:"strict" yaml:"strict"`

	sections map[string]map[string]interface{}
}

// Default returns the configuration built from the embedded defaults only
func Default() *Config {
	cfg, err := load("", false, nil)
	if err != nil {
		// The embedded file is part of the binary; failing to parse it is a build defect
		panic(err)
	}
	return cfg
}

// Load reads the configuration from the default user config location
func Load() (*Config, error) {
	return load(paths.ConfigFile(), true, nil)
}

// LoadFrom reads the configuration from an explicit file. A missing file is
// not an error; the defaults are used.
func LoadFrom(path string) (*Config, error) {
	return load(path, true, nil)
}

// LoadWith reads path like LoadFrom and then applies overrides, keyed by
// dotted path ("railway.symbol"). Overrides win over every other source.
func LoadWith(path string, overrides map[string]interface{}) (*Config, error) {
	return load(path, true, overrides)
}

// ParseOverrides turns "key=value" pairs into an overrides map for LoadWith
func ParseOverrides(pairs []string) (map[string]interface{}, error) {
	overrides := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid override %q, expected key=value", pair).
				WithDetail("override", pair)
		}
		overrides[key] = value
	}
	return overrides, nil
}

func load(path string, withEnv bool, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file if it exists
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
					WithDetail("path", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config %s", path).
				WithDetail("path", path)
		}
	}

	// 3. Env vars for root keys
	if withEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			if s == paths.EnvConfigFile {
				return ""
			}
			return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Explicit overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal root keys
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "failed to unmarshal configuration")
	}

	// 6. Keep module sections raw
	cfg.sections = make(map[string]map[string]interface{})
	for key, value := range k.Raw() {
		if section, ok := value.(map[string]interface{}); ok {
			cfg.sections[key] = section
		}
	}

	if cfg.CommandTimeout <= 0 {
		return nil, errors.Newf(errors.ErrConfigInvalid, "command_timeout must be positive, got %d", cfg.CommandTimeout)
	}

	return &cfg, nil
}

// Section returns the raw configuration of a module, or nil
func (c *Config) Section(name string) map[string]interface{} {
	if c == nil {
		return nil
	}
	return c.sections[name]
}

// SectionNames returns the names of all configured module sections
func (c *Config) SectionNames() []string {
	names := make([]string, 0, len(c.sections))
	for name := range c.sections {
		names = append(names, name)
	}
	return names
}

// Timeout returns command_timeout as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.CommandTimeout) * time.Millisecond
}
