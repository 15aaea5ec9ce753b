// Package config loads CLI configuration from the environment. The papi
// library itself never reads ambient configuration; everything it needs is
// passed explicitly at construction.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Polaris  PolarisConfig
	Defaults DefaultsConfig
	HTTP     HTTPConfig
	Logging  LoggingConfig
}

// PolarisConfig identifies the deployment and the signing credentials.
type PolarisConfig struct {
	Host        string
	AccessKey   string
	AccessKeyID string
}

// DefaultsConfig overrides the root path segment defaults for every call.
// Empty fields keep the library defaults (v1 / 1033 / 100 / 1).
type DefaultsConfig struct {
	Version        string
	LanguageID     string
	ApplicationID  string
	OrganizationID string
}

type HTTPConfig struct {
	Timeout time.Duration
}

type LoggingConfig struct {
	Level    string
	Encoding string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("POLARIS_HTTP_TIMEOUT", "30s")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_ENCODING", "console")

	timeout, err := parseDurationWithDefault(viper.GetString("POLARIS_HTTP_TIMEOUT"), 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid POLARIS_HTTP_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Polaris: PolarisConfig{
			Host:        viper.GetString("POLARIS_HOST"),
			AccessKey:   viper.GetString("POLARIS_ACCESS_KEY"),
			AccessKeyID: viper.GetString("POLARIS_ACCESS_KEY_ID"),
		},
		Defaults: DefaultsConfig{
			Version:        viper.GetString("POLARIS_VERSION"),
			LanguageID:     viper.GetString("POLARIS_LANGUAGE_ID"),
			ApplicationID:  viper.GetString("POLARIS_APPLICATION_ID"),
			OrganizationID: viper.GetString("POLARIS_ORGANIZATION_ID"),
		},
		HTTP: HTTPConfig{
			Timeout: timeout,
		},
		Logging: LoggingConfig{
			Level:    viper.GetString("LOG_LEVEL"),
			Encoding: viper.GetString("LOG_ENCODING"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.validatePolaris(); err != nil {
		return fmt.Errorf("polaris config: %w", err)
	}
	if err := c.validateHTTP(); err != nil {
		return fmt.Errorf("http config: %w", err)
	}
	return nil
}

func (c *Config) validatePolaris() error {
	if c.Polaris.Host == "" {
		return fmt.Errorf("host is required")
	}
	if c.Polaris.AccessKey == "" {
		return fmt.Errorf("access key is required")
	}
	if c.Polaris.AccessKeyID == "" {
		return fmt.Errorf("access key id is required")
	}
	return nil
}

func (c *Config) validateHTTP() error {
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("timeout must be greater than 0")
	}
	return nil
}

func parseDurationWithDefault(s string, defaultVal time.Duration) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultVal, nil
	}
	return time.ParseDuration(s)
}
