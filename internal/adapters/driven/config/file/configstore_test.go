package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minutes-cli/internal/connectors/meetnotes"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestConfigStore_SetGetRoundTrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set(KeyProviderBaseURL, "https://api.example.com"))
	require.NoError(t, store.Set(KeyProviderPageSize, 25))
	require.NoError(t, store.Set("debug", true))

	assert.Equal(t, "https://api.example.com", store.GetString(KeyProviderBaseURL))
	assert.Equal(t, 25, store.GetInt(KeyProviderPageSize))
	assert.True(t, store.GetBool("debug"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("missing"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyCaptionsCookie, "session=abc"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "session=abc", reopened.GetString(KeyCaptionsCookie))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[provider]\nbase_url = \"https://api.example.com\"\npage_size = 10\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", store.GetString(KeyProviderBaseURL))
	assert.Equal(t, 10, store.GetInt(KeyProviderPageSize))
}

func TestConfigStore_PageSizeDefault(t *testing.T) {
	store := newTestStore(t)
	assert.Equal(t, meetnotes.DefaultPageSize, store.PageSize())

	require.NoError(t, store.Set(KeyProviderPageSize, 7))
	assert.Equal(t, 7, store.PageSize())
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("key", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
