package interfaces

import (
	"io"

	domaintypes "ebicsletter/internal/domain/types"
)

// UserStore persists user, partner and bank records.
type UserStore interface {
	SaveUser(rec domaintypes.UserRecord) error
	LoadUser(id domaintypes.UserID) (domaintypes.UserRecord, bool, error)
	ListUsers() ([]domaintypes.UserID, error)
	// CreateUserDirectories creates the user, keystore and letters directories.
	CreateUserDirectories(id domaintypes.UserID) error
}

// KeyStore keeps a user's key set encrypted under a passphrase.
type KeyStore interface {
	SaveKeySet(id domaintypes.UserID, passphrase string, ks domaintypes.KeySet) error
	LoadKeySet(id domaintypes.UserID, passphrase string) (domaintypes.KeySet, error)
}

// LetterStore writes finished letters into the user's letters directory and
// returns the path written.
type LetterStore interface {
	SaveLetter(id domaintypes.UserID, name string, letter io.WriterTo) (string, error)
}
