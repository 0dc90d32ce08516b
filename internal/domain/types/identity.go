package types

// Identity is the set of identifiers printed in a letter header.
// It is supplied by the caller and never modified while a letter is built.
type Identity struct {
	HostID           string
	BankName         string
	UserID           string
	UserName         string
	PartnerID        string
	SignatureVersion string
}

// Bank describes the EBICS bank a user is registered with.
type Bank struct {
	HostID          string `json:"host_id"`
	Name            string `json:"name"`
	URL             string `json:"url,omitempty"`
	UseCertificates bool   `json:"use_certificates"`
}

// UserRecord is the persisted user together with its partner and bank.
type UserRecord struct {
	UserID       UserID `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Country      string `json:"country,omitempty"`
	Organization string `json:"organization,omitempty"`
	PartnerID    string `json:"partner_id"`
	Bank         Bank   `json:"bank"`
	CreatedUTC   int64  `json:"created_utc"`
}

// LetterIdentity returns the letter header identity for the given key version.
func (u UserRecord) LetterIdentity(version KeyVersion) Identity {
	return Identity{
		HostID:           u.Bank.HostID,
		BankName:         u.Bank.Name,
		UserID:           u.UserID.String(),
		UserName:         u.Name,
		PartnerID:        u.PartnerID,
		SignatureVersion: version.String(),
	}
}
