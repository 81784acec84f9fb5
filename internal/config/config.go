package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config holds runtime settings. Layers, lowest first: defaults, the
// YAML config file, CUMBRE_* environment variables, command-line flags.
type Config struct {
	DBPath      string        `mapstructure:"db" env:"CUMBRE_DB"`
	CareersDir  string        `mapstructure:"careers_dir" env:"CUMBRE_CAREERS_DIR"`
	LogLevel    string        `mapstructure:"log_level" env:"CUMBRE_LOG_LEVEL"`
	HTTPRetries int           `mapstructure:"http_retries" env:"CUMBRE_HTTP_RETRIES"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout" env:"CUMBRE_HTTP_TIMEOUT"`
}

const configName = ".cumbre"

// Defaults returns the built-in settings. The database lives under
// ~/.cumbre.
func Defaults() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	return &Config{
		DBPath:      filepath.Join(home, ".cumbre", "cumbre.db"),
		LogLevel:    "warn",
		HTTPRetries: 3,
		HTTPTimeout: 10 * time.Second,
	}, nil
}

// Load resolves defaults, the config file and the environment. An empty
// configFile means ~/.cumbre.yaml, which may be absent; an explicit file
// must exist.
func Load(configFile string) (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("db", cfg.DBPath)
	v.SetDefault("careers_dir", cfg.CareersDir)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("http_retries", cfg.HTTPRetries)
	v.SetDefault("http_timeout", cfg.HTTPTimeout)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	expanded, err := homedir.Expand(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("expanding db path: %w", err)
	}
	cfg.DBPath = expanded
	if cfg.CareersDir != "" {
		if cfg.CareersDir, err = homedir.Expand(cfg.CareersDir); err != nil {
			return nil, fmt.Errorf("expanding careers dir: %w", err)
		}
	}
	return cfg, nil
}
