package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFlagSelectsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\n"), 0o600))

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"--config", path, "version"})

	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, path, viper.ConfigFileUsed(), "--config must pick the file to load")
	assert.Equal(t, "json", viper.GetString("output"))
}
