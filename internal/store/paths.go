package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"

	"ebicsletter/internal/domain"
)

const (
	usersDir    = "users"
	keystoreDir = "keystore"
	lettersDir  = "letters"
	userFile    = "user.json"
	keysFile    = "keys.enc"
)

// ErrInvalidUserID is returned for user IDs that cannot name a directory.
var ErrInvalidUserID = errors.New("invalid user id")

var userIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,34}$`)

// ValidateUserID reports whether id is usable as a directory name.
func ValidateUserID(id domain.UserID) error {
	if !userIDPattern.MatchString(id.String()) {
		return fmt.Errorf("%w: %q", ErrInvalidUserID, id)
	}
	return nil
}

// Paths resolves the on-disk layout below a home directory:
//
//	<home>/users/<id>/user.json
//	<home>/users/<id>/keystore/keys.enc
//	<home>/users/<id>/letters/
type Paths struct {
	Home string
}

// UsersDir returns the directory holding one subdirectory per user.
func (p Paths) UsersDir() string { return filepath.Join(p.Home, usersDir) }

// UserDir returns the directory of one user.
func (p Paths) UserDir(id domain.UserID) string {
	return filepath.Join(p.UsersDir(), id.String())
}

// KeystoreDir returns the directory of the user's encrypted keys.
func (p Paths) KeystoreDir(id domain.UserID) string {
	return filepath.Join(p.UserDir(id), keystoreDir)
}

// LettersDir returns the default letters directory of the user.
func (p Paths) LettersDir(id domain.UserID) string {
	return filepath.Join(p.UserDir(id), lettersDir)
}
