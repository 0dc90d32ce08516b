package store

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"ebicsletter/internal/domain"
)

// UserFileStore persists user records, one JSON file per user.
type UserFileStore struct {
	paths Paths
	mu    sync.Mutex
}

// NewUserFileStore returns a UserFileStore rooted at home.
func NewUserFileStore(home string) *UserFileStore {
	return &UserFileStore{paths: Paths{Home: home}}
}

// CreateUserDirectories creates the user, keystore and letters directories.
func (s *UserFileStore) CreateUserDirectories(id domain.UserID) error {
	if err := ValidateUserID(id); err != nil {
		return err
	}
	for _, dir := range []string{s.paths.KeystoreDir(id), s.paths.LettersDir(id)} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return nil
}

// SaveUser stores or replaces rec.
func (s *UserFileStore) SaveUser(rec domain.UserRecord) error {
	if err := ValidateUserID(rec.UserID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.paths.UserDir(rec.UserID), 0o700); err != nil {
		return err
	}
	return writeJSON(filepath.Join(s.paths.UserDir(rec.UserID), userFile), rec, 0o600)
}

// LoadUser retrieves the record of id. ok is false when no such user exists.
func (s *UserFileStore) LoadUser(id domain.UserID) (domain.UserRecord, bool, error) {
	if err := ValidateUserID(id); err != nil {
		return domain.UserRecord{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec domain.UserRecord
	found, err := readJSON(filepath.Join(s.paths.UserDir(id), userFile), &rec)
	if err != nil || !found {
		return domain.UserRecord{}, false, err
	}
	return rec, true, nil
}

// ListUsers returns the IDs of all stored users in lexical order.
func (s *UserFileStore) ListUsers() ([]domain.UserID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.paths.UsersDir())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []domain.UserID
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(s.paths.UsersDir(), e.Name(), userFile)); err != nil {
			continue
		}
		ids = append(ids, domain.UserID(e.Name()))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// Compile-time assertion that UserFileStore implements domain.UserStore.
var _ domain.UserStore = (*UserFileStore)(nil)
