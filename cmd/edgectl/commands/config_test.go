package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyConfigValue(t *testing.T) {
	t.Parallel()

	config := &Config{}

	require.NoError(t, applyConfigValue(config, "api_endpoint", "https://api.example.com/client/v4"))
	require.NoError(t, applyConfigValue(config, "api_token", "secret"))
	require.NoError(t, applyConfigValue(config, "output", "json"))

	assert.Equal(t, "https://api.example.com/client/v4", config.APIEndpoint)
	assert.Equal(t, "secret", config.APIToken)
	assert.Equal(t, "json", config.Output)

	err := applyConfigValue(config, "bogus", "value")
	require.ErrorIs(t, err, errUnknownConfigKey)
}

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	saved := &Config{
		APIEndpoint: "https://api.example.com/client/v4",
		APIToken:    "secret-token",
		Output:      "yaml",
	}

	require.NoError(t, saveConfig(saved))

	loaded := loadConfig()
	assert.Equal(t, saved, loaded)
}

func TestLoadConfigMissingFileIsEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	config := loadConfig()

	require.NotNil(t, config)
	assert.Empty(t, config.APIEndpoint)
	assert.Empty(t, config.APIToken)
}
