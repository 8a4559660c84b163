package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minutes-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

func setupCredentialsTest() (*memory.CredentialStore, func()) {
	store := memory.NewCredentialStore()
	old := credentialStore
	credentialStore = store
	return store, func() {
		credentialStore = old
		credentialsAddLabel = ""
		credentialsAddAPIKey = ""
	}
}

func TestCredentialsCmd_Use(t *testing.T) {
	assert.Equal(t, "credentials", credentialsCmd.Use)
}

func TestCredentialsAddAndList(t *testing.T) {
	store, cleanup := setupCredentialsTest()
	defer cleanup()

	out, err := execute(t, "credentials", "add", "--label", "work", "--api-key", "key-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Added credential")

	creds, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Equal(t, "work", creds[0].Label)
	assert.True(t, creds[0].Enabled)

	out, err = execute(t, "credentials", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "work")
}

func TestCredentialsEnableDisable(t *testing.T) {
	store, cleanup := setupCredentialsTest()
	defer cleanup()
	require.NoError(t, store.Save(context.Background(), domain.Credential{
		ID:      "cred-1",
		Enabled: false,
	}))

	_, err := execute(t, "credentials", "enable", "cred-1")
	require.NoError(t, err)
	cred, err := store.Get(context.Background(), "cred-1")
	require.NoError(t, err)
	assert.True(t, cred.Enabled)

	_, err = execute(t, "credentials", "disable", "cred-1")
	require.NoError(t, err)
	cred, err = store.Get(context.Background(), "cred-1")
	require.NoError(t, err)
	assert.False(t, cred.Enabled)
}

func TestCredentialsRemove(t *testing.T) {
	store, cleanup := setupCredentialsTest()
	defer cleanup()
	require.NoError(t, store.Save(context.Background(), domain.Credential{ID: "cred-1"}))

	_, err := execute(t, "credentials", "remove", "cred-1")
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "cred-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
