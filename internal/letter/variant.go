package letter

import "ebicsletter/internal/domain"

// Message keys shared by all variants.
const (
	certificateTitleKey = "Letter.certificate"
	fingerprintTitleKey = "Letter.hash"
)

// Variant describes one kind of initialization letter.
type Variant struct {
	Version  domain.KeyVersion
	TitleKey string
	// Proof is the key material form the letter embeds.
	Proof    domain.KeyMaterialKind
	FileName string
}

// The three EBICS initialization letters.
var (
	// A005 confirms the electronic signature key (INI).
	A005 = Variant{
		Version:  domain.SignatureVersion,
		TitleKey: "INILetter.title",
		Proof:    domain.KeyMaterialRawKey,
		FileName: "A005Letter.txt",
	}
	// E002 confirms the encryption key (HIA).
	E002 = Variant{
		Version:  domain.EncryptionVersion,
		TitleKey: "HIALetter.e002.title",
		Proof:    domain.KeyMaterialRawKey,
		FileName: "E002Letter.txt",
	}
	// X002 confirms the authentication key (HIA) and prints its certificate.
	X002 = Variant{
		Version:  domain.AuthenticationVersion,
		TitleKey: "HIALetter.x002.title",
		Proof:    domain.KeyMaterialCertificate,
		FileName: "X002Letter.txt",
	}
)

// Variants returns A005, E002 and X002 in that order.
func Variants() []Variant { return []Variant{A005, E002, X002} }

// WithProof returns a copy of v embedding the given key material form, for
// banks that expect certificates on every letter.
func (v Variant) WithProof(kind domain.KeyMaterialKind) Variant {
	v.Proof = kind
	return v
}

// String returns the key version of the letter.
func (v Variant) String() string { return v.Version.String() }
