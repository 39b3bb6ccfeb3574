// Package config loads the configuration of the lognum command.
//
// Settings are read, in increasing order of priority, from built-in defaults,
// an optional YAML (or TOML, JSON...) file, LOGNUM_* environment variables and
// command line flags.
package config

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/db47h/lognum/context"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "LOGNUM"

// keys
const (
	KeyPrecision = "precision"
	KeyNotation  = "notation"
	KeyLogLevel  = "log_level"
	KeyWorkers   = "workers"
)

type Config struct {
	Precision int    `mapstructure:"precision"`
	Notation  string `mapstructure:"notation"`
	LogLevel  string `mapstructure:"log_level"`
	Workers   int    `mapstructure:"workers"`
}

// DefaultConfig returns the configuration used when no file, environment
// variable or flag overrides a setting.
func DefaultConfig() *Config {
	return &Config{
		Precision: -1,
		Notation:  context.Auto.String(),
		LogLevel:  "warn",
		Workers:   runtime.NumCPU(),
	}
}

// NewViper returns a viper instance with defaults and environment bindings
// for every key of Config.
func NewViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault(KeyPrecision, def.Precision)
	v.SetDefault(KeyNotation, def.Notation)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyWorkers, def.Workers)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds the flags of fs to their configuration keys. Flag names use
// dashes where keys use underscores.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{KeyPrecision, KeyNotation, KeyLogLevel, KeyWorkers} {
		f := fs.Lookup(strings.ReplaceAll(key, "_", "-"))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the configuration file, if any, and returns the validated
// configuration.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.ValidateBasic(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) ValidateBasic() error {
	if _, err := context.ParseNotation(cfg.Notation); err != nil {
		return fmt.Errorf("%s: %w", KeyNotation, err)
	}
	if hclog.LevelFromString(cfg.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("%s: unknown level %q", KeyLogLevel, cfg.LogLevel)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("%s: must be at least 1, got %d", KeyWorkers, cfg.Workers)
	}
	return nil
}

// Context returns a new evaluation context with the display settings of cfg.
func (cfg *Config) Context() *context.Context {
	n, _ := context.ParseNotation(cfg.Notation)
	return context.New(cfg.Precision, n)
}

// Logger returns a logger writing to w at the configured level.
func (cfg *Config) Logger(w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "lognum",
		Level:  hclog.LevelFromString(cfg.LogLevel),
		Output: w,
	})
}
