// Package config loads client settings from a YAML file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kingsmao/bittrex-connector/pkg/logger"
	"github.com/kingsmao/bittrex-connector/pkg/schema"
)

const (
	EnvAPIKey     = "BITTREX_API_KEY"
	EnvAPISecret  = "BITTREX_API_SECRET"
	EnvAPIVersion = "BITTREX_API_VERSION"
)

// Config holds everything needed to build a client.
type Config struct {
	APIKey    string        `yaml:"api_key"`
	APISecret string        `yaml:"api_secret"`
	Version   string        `yaml:"version"`
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	Log       LogConfig     `yaml:"log"`
}

// LogConfig mirrors logger.Options.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	MaxAge int    `yaml:"max_age"`
}

// Load reads path (optional, may be empty), then .env files (missing ones are ignored),
// then applies BITTREX_* environment overrides.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("cannot parse YAML: %w", err)
		}
	}

	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot load env file: %w", err)
	}
	cfg.applyEnv()

	if cfg.Version != "" {
		if _, err := schema.ParseAPIVersion(cfg.Version); err != nil {
			return nil, err
		}
	}
	if (cfg.APIKey == "") != (cfg.APISecret == "") {
		return nil, fmt.Errorf("api_key and api_secret must be set together")
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvAPISecret); v != "" {
		c.APISecret = v
	}
	if v := os.Getenv(EnvAPIVersion); v != "" {
		c.Version = v
	}
}

// ClientConfig picks the construction mode: authenticated when credentials are present
// (the version is then v1.1 whatever was configured), public otherwise.
func (c *Config) ClientConfig() (schema.ClientConfig, error) {
	if c.APIKey != "" && c.APISecret != "" {
		if c.Version != "" {
			if v, _ := schema.ParseAPIVersion(c.Version); v != schema.V1_1 {
				logger.Warn("私有接口仅支持 v1.1，忽略配置的版本 %s", c.Version)
			}
		}
		return schema.NewAuthConfig(c.APIKey, c.APISecret), nil
	}

	var version schema.APIVersion
	if c.Version != "" {
		v, err := schema.ParseAPIVersion(c.Version)
		if err != nil {
			return schema.ClientConfig{}, err
		}
		version = v
	}
	return schema.NewPublicConfig(version), nil
}

// LoggerOptions converts the log section.
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  c.Log.Level,
		Format: c.Log.Format,
		Output: c.Log.Output,
		MaxAge: c.Log.MaxAge,
	}
}
