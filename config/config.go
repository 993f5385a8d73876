package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes the environment variables read by Load, e.g.
// GRAPHQL_PARSE_MAX_SIZE.
const EnvPrefix = "GRAPHQL_PARSE"

// Keys understood by Load.
const (
	KeyConfigFile = "config"
	KeyStrict     = "strict"
	KeyMaxSize    = "max_size"
	KeyCacheSize  = "cache_size"
	KeyLogLevel   = "log_level"
	KeyTrace      = "trace"
)

type Config struct {
	// Strict requires the whole input to be a document. Otherwise trailing
	// text that is not a definition is reported and ignored.
	Strict          bool   `mapstructure:"strict"`
	MaxDocumentSize int    `mapstructure:"max_size"`
	CacheSize       int    `mapstructure:"cache_size"`
	LogLevel        string `mapstructure:"log_level"`
	// Trace reports parse spans to a Jaeger agent configured through the
	// standard JAEGER_* environment variables.
	Trace bool `mapstructure:"trace"`
}

func Default() *Config {
	return &Config{
		Strict:          true,
		MaxDocumentSize: 0,
		CacheSize:       0,
		LogLevel:        "info",
		Trace:           false,
	}
}

// Load resolves the configuration from, in increasing precedence, the
// defaults, the YAML file named by the "config" key, GRAPHQL_PARSE_*
// environment variables and any flags bound to v.
func Load(v *viper.Viper) (*Config, error) {
	d := Default()
	v.SetDefault(KeyStrict, d.Strict)
	v.SetDefault(KeyMaxSize, d.MaxDocumentSize)
	v.SetDefault(KeyCacheSize, d.CacheSize)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyTrace, d.Trace)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString(KeyConfigFile); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MaxDocumentSize < 0 {
		return fmt.Errorf("config: max_size must not be negative, got %d", c.MaxDocumentSize)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("config: cache_size must not be negative, got %d", c.CacheSize)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("config: log_level: %w", err)
	}
	return lvl, nil
}
