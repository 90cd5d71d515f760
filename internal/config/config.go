// Package config resolves the matrixcalc settings from defaults, an optional
// YAML file, MATRIXCALC_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/matrixcalc/internal/logging"
	"github.com/katalvlaran/matrixcalc/matrix"
)

// EnvPrefix is prepended to every environment key, e.g. MATRIXCALC_WIDTH.
const EnvPrefix = "MATRIXCALC"

// Keys shared by flags, env and the config file.
const (
	KeyConfig      = "config"
	KeyWidth       = "width"
	KeyPrecision   = "precision"
	KeyEchoPrompts = "echo-prompts"
	KeyLogLevel    = "log-level"
)

// Config holds the resolved settings.
type Config struct {
	// Width is the right-alignment width of every rendered entry.
	Width int `mapstructure:"width"`

	// Precision is the number of decimals for non-integral entries.
	Precision int `mapstructure:"precision"`

	// EchoPrompts prints the menu and input prompts. Disable for scripted use;
	// results and ERROR lines are printed either way.
	EchoPrompts bool `mapstructure:"echo-prompts"`

	// LogLevel is one of error, warn, info, debug, trace.
	LogLevel string `mapstructure:"log-level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:       matrix.DefaultFieldWidth,
		Precision:   matrix.DefaultPrecision,
		EchoPrompts: true,
		LogLevel:    logging.LevelInfo,
	}
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	if c.Width < 1 {
		return fmt.Errorf("width must be >= 1, got %d", c.Width)
	}
	if c.Precision < 0 {
		return fmt.Errorf("precision must be >= 0, got %d", c.Precision)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log-level: %w", err)
	}

	return nil
}

// RenderOptions converts the settings into matrix rendering options.
// Call only on a validated Config.
func (c *Config) RenderOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithFieldWidth(c.Width),
		matrix.WithPrecision(c.Precision),
	}
}

// AddFlags registers the configuration flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(KeyConfig, "", "path to a YAML config file")
	fs.Int(KeyWidth, d.Width, "field width of each rendered entry")
	fs.Int(KeyPrecision, d.Precision, "decimals for non-integral entries")
	fs.Bool(KeyEchoPrompts, d.EchoPrompts, "print the menu and input prompts")
	fs.String(KeyLogLevel, d.LogLevel, "log level: error, warn, info, debug, trace")
}

// Load resolves the configuration. fs may be nil; when given, its flags must
// have been registered with AddFlags and parsed.
func Load(v *viper.Viper, fs *pflag.FlagSet) (*Config, error) {
	d := Default()
	v.SetDefault(KeyWidth, d.Width)
	v.SetDefault(KeyPrecision, d.Precision)
	v.SetDefault(KeyEchoPrompts, d.EchoPrompts)
	v.SetDefault(KeyLogLevel, d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
