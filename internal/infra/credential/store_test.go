package credential

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()

	return NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))
}

func TestFileStore_WriteThenRead(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.WriteToken("aaa.bbb.ccc"))

	token, ok := store.ReadToken()
	assert.True(t, ok)
	assert.Equal(t, "aaa.bbb.ccc", token)
}

func TestFileStore_WritePopulatesAllKeys(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.WriteToken("tok"))

	raw, err := os.ReadFile(store.path)
	require.NoError(t, err)

	keyring := map[string]string{}
	require.NoError(t, json.Unmarshal(raw, &keyring))
	assert.Equal(t, "tok", keyring["adminToken"])
	assert.Equal(t, "tok", keyring["token"])
	assert.Equal(t, "tok", keyring["access_token"])
}

func TestFileStore_ReadScansLegacyKeys(t *testing.T) {
	store := newTestStore(t)

	// Older releases wrote only the generic key.
	raw, err := json.Marshal(map[string]string{"access_token": "legacy"})
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.path), 0o700))
	require.NoError(t, os.WriteFile(store.path, raw, 0o600))

	token, ok := store.ReadToken()
	assert.True(t, ok)
	assert.Equal(t, "legacy", token)
}

func TestFileStore_ReadPriorityOrder(t *testing.T) {
	store := newTestStore(t)

	raw, err := json.Marshal(map[string]string{
		"adminToken":   "primary",
		"token":        "secondary",
		"access_token": "tertiary",
	})
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.path), 0o700))
	require.NoError(t, os.WriteFile(store.path, raw, 0o600))

	token, ok := store.ReadToken()
	assert.True(t, ok)
	assert.Equal(t, "primary", token)
}

func TestFileStore_ClearRemovesEveryKey(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.WriteToken("tok"))

	require.NoError(t, store.Clear())

	_, ok := store.ReadToken()
	assert.False(t, ok)

	// Clearing again is a no-op.
	require.NoError(t, store.Clear())
}

func TestFileStore_AbsentFileReadsAsAbsent(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.ReadToken()
	assert.False(t, ok)
}

func TestFileStore_FilePermissions(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.WriteToken("tok"))

	info, err := os.Stat(store.path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
