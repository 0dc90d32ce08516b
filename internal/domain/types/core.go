package types

// UserID identifies an EBICS user as assigned by the bank.
type UserID string

// String returns the string form of the user ID.
func (u UserID) String() string { return string(u) }

// KeyVersion names an EBICS key version, for example "A005" for the
// signature key or "X002" for the authentication key.
type KeyVersion string

// String returns the string form of the key version.
func (v KeyVersion) String() string { return string(v) }

// Key versions for which initialization letters are issued.
const (
	SignatureVersion      KeyVersion = "A005"
	EncryptionVersion     KeyVersion = "E002"
	AuthenticationVersion KeyVersion = "X002"
)
