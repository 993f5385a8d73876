package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/graph-gophers/graphql-parser/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl)
}

func TestLoadFileAndEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "graphql-parse.yaml")
	require.NoError(t, os.WriteFile(file, []byte("strict: false\nmax_size: 1024\nlog_level: debug\n"), 0o600))
	t.Setenv("GRAPHQL_PARSE_MAX_SIZE", "2048")
	t.Setenv("GRAPHQL_PARSE_CACHE_SIZE", "16")

	v := viper.New()
	v.Set(config.KeyConfigFile, file)
	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.False(t, cfg.Strict)
	assert.Equal(t, 2048, cfg.MaxDocumentSize, "environment overrides the file")
	assert.Equal(t, 16, cfg.CacheSize)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	for _, tc := range []struct {
		description string
		key         string
		value       interface{}
	}{
		{"negative size", config.KeyMaxSize, -1},
		{"negative cache", config.KeyCacheSize, -5},
		{"unknown level", config.KeyLogLevel, "loud"},
		{"missing file", config.KeyConfigFile, filepath.Join(os.TempDir(), "does-not-exist.yaml")},
	} {
		t.Run(tc.description, func(t *testing.T) {
			v := viper.New()
			v.Set(tc.key, tc.value)
			_, err := config.Load(v)
			assert.Error(t, err)
		})
	}
}
