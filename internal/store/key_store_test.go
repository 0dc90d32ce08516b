package store_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebicsletter/internal/domain"
	"ebicsletter/internal/store"
)

func newKeyStore(home string) *store.KeyFileStore {
	ks := store.NewKeyFileStore(home)
	store.UseFastKDF(ks)
	return ks
}

func testKeySet() domain.KeySet {
	return domain.KeySet{
		Signature:      domain.KeyPair{Version: domain.SignatureVersion, PrivateKey: []byte{1, 2}, Certificate: []byte{3}},
		Encryption:     domain.KeyPair{Version: domain.EncryptionVersion, PrivateKey: []byte{4}, Certificate: []byte{5}},
		Authentication: domain.KeyPair{Version: domain.AuthenticationVersion, PrivateKey: []byte{6}, Certificate: []byte{7, 8}},
		CreatedUTC:     1700000000,
	}
}

func TestKeySet_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var keys domain.KeyStore = newKeyStore(home)

	require.NoError(t, keys.SaveKeySet("U1", "pass", testKeySet()))

	got, err := keys.LoadKeySet("U1", "pass")
	require.NoError(t, err)
	assert.Equal(t, testKeySet(), got)

	path := filepath.Join(home, "users", "U1", "keystore", "keys.enc")
	if runtime.GOOS != "windows" {
		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	}
}

func TestKeySet_WrongPassphrase_Fails(t *testing.T) {
	keys := newKeyStore(t.TempDir())
	require.NoError(t, keys.SaveKeySet("U1", "correct", testKeySet()))

	_, err := keys.LoadKeySet("U1", "wrong")
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestKeySet_BoundToOwner(t *testing.T) {
	home := t.TempDir()
	keys := newKeyStore(home)
	require.NoError(t, keys.SaveKeySet("U1", "pass", testKeySet()))

	src := filepath.Join(home, "users", "U1", "keystore", "keys.enc")
	dstDir := filepath.Join(home, "users", "U2", "keystore")
	require.NoError(t, os.MkdirAll(dstDir, 0o700))
	b, err := os.ReadFile(src)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dstDir, "keys.enc"), b, 0o600))

	_, err = keys.LoadKeySet("U2", "pass")
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestKeySet_Missing(t *testing.T) {
	keys := newKeyStore(t.TempDir())

	_, err := keys.LoadKeySet("U1", "pass")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
