package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Success(t *testing.T) {
	os.Setenv("POLARIS_HOST", "catalog.example.org")
	os.Setenv("POLARIS_ACCESS_KEY", "test-access-key")
	os.Setenv("POLARIS_ACCESS_KEY_ID", "test-key-id")
	defer func() {
		os.Unsetenv("POLARIS_HOST")
		os.Unsetenv("POLARIS_ACCESS_KEY")
		os.Unsetenv("POLARIS_ACCESS_KEY_ID")
	}()

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "catalog.example.org", cfg.Polaris.Host)
	assert.Equal(t, "test-access-key", cfg.Polaris.AccessKey)
	assert.Equal(t, "test-key-id", cfg.Polaris.AccessKeyID)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "30s", cfg.HTTP.Timeout.String())
}

func TestLoadConfig_DefaultsPassthrough(t *testing.T) {
	os.Setenv("POLARIS_HOST", "catalog.example.org")
	os.Setenv("POLARIS_ACCESS_KEY", "test-access-key")
	os.Setenv("POLARIS_ACCESS_KEY_ID", "test-key-id")
	os.Setenv("POLARIS_LANGUAGE_ID", "1036")
	os.Setenv("POLARIS_ORGANIZATION_ID", "3")
	defer func() {
		os.Unsetenv("POLARIS_HOST")
		os.Unsetenv("POLARIS_ACCESS_KEY")
		os.Unsetenv("POLARIS_ACCESS_KEY_ID")
		os.Unsetenv("POLARIS_LANGUAGE_ID")
		os.Unsetenv("POLARIS_ORGANIZATION_ID")
	}()

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "1036", cfg.Defaults.LanguageID)
	assert.Equal(t, "3", cfg.Defaults.OrganizationID)
	// Untouched segments stay empty and fall back inside the library.
	assert.Empty(t, cfg.Defaults.Version)
}

func TestLoadConfig_MissingHost(t *testing.T) {
	os.Setenv("POLARIS_ACCESS_KEY", "test-access-key")
	os.Setenv("POLARIS_ACCESS_KEY_ID", "test-key-id")
	defer func() {
		os.Unsetenv("POLARIS_ACCESS_KEY")
		os.Unsetenv("POLARIS_ACCESS_KEY_ID")
	}()

	cfg, err := LoadConfig()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "host is required")
}

func TestLoadConfig_MissingAccessKey(t *testing.T) {
	os.Setenv("POLARIS_HOST", "catalog.example.org")
	os.Setenv("POLARIS_ACCESS_KEY_ID", "test-key-id")
	defer func() {
		os.Unsetenv("POLARIS_HOST")
		os.Unsetenv("POLARIS_ACCESS_KEY_ID")
	}()

	cfg, err := LoadConfig()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "access key is required")
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	os.Setenv("POLARIS_HOST", "catalog.example.org")
	os.Setenv("POLARIS_ACCESS_KEY", "test-access-key")
	os.Setenv("POLARIS_ACCESS_KEY_ID", "test-key-id")
	os.Setenv("POLARIS_HTTP_TIMEOUT", "not-a-duration")
	defer func() {
		os.Unsetenv("POLARIS_HOST")
		os.Unsetenv("POLARIS_ACCESS_KEY")
		os.Unsetenv("POLARIS_ACCESS_KEY_ID")
		os.Unsetenv("POLARIS_HTTP_TIMEOUT")
	}()

	cfg, err := LoadConfig()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "POLARIS_HTTP_TIMEOUT")
}
