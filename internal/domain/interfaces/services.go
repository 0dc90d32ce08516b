package interfaces

import domaintypes "ebicsletter/internal/domain/types"

// UserService creates and looks up EBICS users.
type UserService interface {
	CreateUser(rec domaintypes.UserRecord, passphrase string) (domaintypes.UserRecord, []string, error)
	LoadUser(id domaintypes.UserID) (domaintypes.UserRecord, error)
	ListUsers() ([]domaintypes.UserID, error)
}

// LetterService builds the initialization letters of a user and writes them.
type LetterService interface {
	CreateLetters(id domaintypes.UserID, passphrase string, useCertificates bool) ([]string, error)
	Fingerprints(id domaintypes.UserID, passphrase string, useCertificates bool) ([]domaintypes.KeyFingerprint, error)
}
