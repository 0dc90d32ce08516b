package store

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"ebicsletter/internal/domain"
)

// LetterFileStore writes finished letters to disk.
type LetterFileStore struct {
	paths Paths
	root  string
	mu    sync.Mutex
}

// NewLetterFileStore returns a LetterFileStore writing into each user's
// letters directory below home. A non-empty root replaces that directory
// with <root>/<user id>.
func NewLetterFileStore(home, root string) *LetterFileStore {
	return &LetterFileStore{paths: Paths{Home: home}, root: root}
}

// Dir returns the directory letters of id are written to.
func (s *LetterFileStore) Dir(id domain.UserID) string {
	if s.root != "" {
		return filepath.Join(s.root, id.String())
	}
	return s.paths.LettersDir(id)
}

// SaveLetter atomically writes letter as name into the letters directory of
// id and returns the written path. An existing letter is replaced.
func (s *LetterFileStore) SaveLetter(id domain.UserID, name string, letter io.WriterTo) (string, error) {
	if err := ValidateUserID(id); err != nil {
		return "", err
	}
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", os.ErrInvalid
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := s.Dir(id)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	err := writeAtomic(path, 0o600, func(f *os.File) error {
		_, err := letter.WriteTo(f)
		return err
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// Compile-time assertion that LetterFileStore implements domain.LetterStore.
var _ domain.LetterStore = (*LetterFileStore)(nil)
