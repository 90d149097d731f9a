package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colkit/colkit/pkg/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Driver)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "-", cfg.Output)
	assert.Equal(t, "none", cfg.Compress)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colkit.yaml")
	content := `
driver: pgx
dsn: postgres://localhost/test
query: SELECT 1
format: csv
compress: gzip
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "pgx", cfg.Driver)
	assert.Equal(t, "postgres://localhost/test", cfg.DSN)
	assert.Equal(t, "SELECT 1", cfg.Query)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, "gzip", cfg.Compress)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "-", cfg.Output, "unset keys keep defaults")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestValidate(t *testing.T) {
	valid := Default()
	valid.DSN = "user:pass@/db"
	valid.Query = "SELECT 1"
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.Driver = "oracle" }},
		{"missing dsn", func(c *Config) { c.DSN = "" }},
		{"missing query", func(c *Config) { c.Query = "" }},
		{"unknown format", func(c *Config) { c.Format = "xml" }},
		{"unknown compression", func(c *Config) { c.Compress = "lz4" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.DSN = "user:pass@/db"
			cfg.Query = "SELECT 1"
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
		})
	}
}
