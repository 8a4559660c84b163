package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minutes-cli/internal/adapters/driven/config/file"
)

func setupConfigTest(t *testing.T) func() {
	t.Helper()

	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	old := configStore
	configStore = store
	return func() { configStore = old }
}

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
	assert.Equal(t, "set <key> <value>", configSetCmd.Use)
}

func TestConfigSetAndShow(t *testing.T) {
	cleanup := setupConfigTest(t)
	defer cleanup()

	_, err := execute(t, "config", "set", file.KeyProviderBaseURL, "https://api.example.com")
	require.NoError(t, err)
	_, err = execute(t, "config", "set", file.KeyProviderPageSize, "25")
	require.NoError(t, err)

	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "https://api.example.com")
	assert.Contains(t, out, "25")
	assert.Contains(t, out, "(unset)")

	// Integers round-trip as integers, not strings.
	assert.Equal(t, 25, configStore.GetInt(file.KeyProviderPageSize))
}
