// Package config loads configuration for the colkit command line tool.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/colkit/colkit/pkg/errors"
)

// LogConfig configures the logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
	Encoding    string `mapstructure:"encoding"`
}

// Config holds the settings for a query run.
type Config struct {
	// Driver is the database/sql driver name (mysql or pgx)
	Driver string `mapstructure:"driver"`
	// DSN is the data source name passed to the driver
	DSN string `mapstructure:"dsn"`
	// Query is the SQL statement to execute
	Query string `mapstructure:"query"`
	// Format selects the output encoding: json, csv or arrow
	Format string `mapstructure:"format"`
	// Output is the output file path, "-" for stdout
	Output string `mapstructure:"output"`
	// Compress selects output compression: none, gzip or zstd
	Compress string `mapstructure:"compress"`

	Log LogConfig `mapstructure:"log"`
}

// Default returns a config with sensible defaults.
func Default() *Config {
	return &Config{
		Driver:   "mysql",
		Format:   "json",
		Output:   "-",
		Compress: "none",
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads configuration from the given YAML file, with COLKIT_*
// environment variables taking precedence over file values. An empty
// path loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("driver", def.Driver)
	// Empty defaults register the keys so AutomaticEnv can fill them.
	v.SetDefault("dsn", "")
	v.SetDefault("query", "")
	v.SetDefault("format", def.Format)
	v.SetDefault("output", def.Output)
	v.SetDefault("compress", def.Compress)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.encoding", def.Log.Encoding)

	v.SetEnvPrefix("COLKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "unmarshaling config")
	}

	return &cfg, nil
}

// Validate checks the config for a query run.
func (c *Config) Validate() error {
	switch c.Driver {
	case "mysql", "pgx":
	default:
		return errors.Newf(errors.ErrorTypeConfig, "unknown driver %q (expected mysql or pgx)", c.Driver)
	}

	if c.DSN == "" {
		return errors.New(errors.ErrorTypeConfig, "dsn is required")
	}
	if c.Query == "" {
		return errors.New(errors.ErrorTypeConfig, "query is required")
	}

	switch c.Format {
	case "json", "csv", "arrow":
	default:
		return errors.Newf(errors.ErrorTypeConfig, "unknown format %q (expected json, csv or arrow)", c.Format)
	}

	switch c.Compress {
	case "none", "gzip", "zstd":
	default:
		return errors.Newf(errors.ErrorTypeConfig, "unknown compression %q (expected none, gzip or zstd)", c.Compress)
	}

	return nil
}
