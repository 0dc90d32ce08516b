package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"ebicsletter/internal/domain"
	"ebicsletter/internal/util/memzero"
)

// KeyFileStore keeps each user's key set encrypted with a passphrase.
type KeyFileStore struct {
	paths Paths
	kdf   kdfParams
	mu    sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore rooted at home.
func NewKeyFileStore(home string) *KeyFileStore {
	return &KeyFileStore{paths: Paths{Home: home}, kdf: scryptParamsDefault()}
}

// SaveKeySet encrypts ks and writes it into the user's keystore directory.
func (s *KeyFileStore) SaveKeySet(id domain.UserID, passphrase string, ks domain.KeySet) error {
	if err := ValidateUserID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(ks)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	ct, err := seal(passphrase, id.String(), raw, s.kdf)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.paths.KeystoreDir(id), 0o700); err != nil {
		return err
	}
	return writeFile(filepath.Join(s.paths.KeystoreDir(id), keysFile), ct, 0o600)
}

// LoadKeySet reads and decrypts the key set of id.
func (s *KeyFileStore) LoadKeySet(id domain.UserID, passphrase string) (domain.KeySet, error) {
	if err := ValidateUserID(id); err != nil {
		return domain.KeySet{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.paths.KeystoreDir(id), keysFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.KeySet{}, fmt.Errorf("reading key store of %s: %w", id, err)
	}
	pt, err := open(passphrase, id.String(), b)
	if err != nil {
		return domain.KeySet{}, err
	}
	defer memzero.Zero(pt)

	var ks domain.KeySet
	if err := json.Unmarshal(pt, &ks); err != nil {
		return domain.KeySet{}, err
	}
	return ks, nil
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
