package types

import "encoding/hex"

// KeyMaterialKind tells which form a KeyMaterial holds.
type KeyMaterialKind int

const (
	// KeyMaterialNone is the zero value and is never valid input.
	KeyMaterialNone KeyMaterialKind = iota
	// KeyMaterialCertificate holds certificate bytes (DER or PEM text).
	KeyMaterialCertificate
	// KeyMaterialRawKey holds an RSA modulus and exponent.
	KeyMaterialRawKey
)

// String returns a readable name for the kind.
func (k KeyMaterialKind) String() string {
	switch k {
	case KeyMaterialCertificate:
		return "certificate"
	case KeyMaterialRawKey:
		return "raw public key"
	default:
		return "none"
	}
}

// KeyMaterial is either a certificate or a raw RSA public key.
//
// Modulus and exponent are big-endian two's-complement encodings, i.e. the
// modulus normally carries a leading zero sign byte.
type KeyMaterial struct {
	kind        KeyMaterialKind
	certificate []byte
	modulus     []byte
	exponent    []byte
}

// Certificate wraps certificate bytes exactly as supplied.
func Certificate(raw []byte) KeyMaterial {
	return KeyMaterial{kind: KeyMaterialCertificate, certificate: raw}
}

// RawPublicKey wraps an RSA modulus and public exponent.
func RawPublicKey(modulus, exponent []byte) KeyMaterial {
	return KeyMaterial{kind: KeyMaterialRawKey, modulus: modulus, exponent: exponent}
}

// Kind reports which form k holds.
func (k KeyMaterial) Kind() KeyMaterialKind { return k.kind }

// CertificateBytes returns the certificate bytes, or nil for a raw key.
func (k KeyMaterial) CertificateBytes() []byte { return k.certificate }

// Modulus returns the modulus bytes, or nil for a certificate.
func (k KeyMaterial) Modulus() []byte { return k.modulus }

// Exponent returns the exponent bytes, or nil for a certificate.
func (k KeyMaterial) Exponent() []byte { return k.exponent }

// FingerprintAlgorithm names the digest procedure behind a Fingerprint.
type FingerprintAlgorithm int

const (
	FromCertificate FingerprintAlgorithm = iota + 1
	FromRawKey
)

// String returns a readable name for the algorithm.
func (a FingerprintAlgorithm) String() string {
	switch a {
	case FromCertificate:
		return "certificate"
	case FromRawKey:
		return "raw-key"
	default:
		return "unknown"
	}
}

// Fingerprint is a SHA-256 digest together with the algorithm that made it.
type Fingerprint struct {
	Sum       []byte
	Algorithm FingerprintAlgorithm
}

// Hex returns the digest as one lowercase hex string.
func (f Fingerprint) Hex() string { return hex.EncodeToString(f.Sum) }

// KeyPair is one stored EBICS key: PKCS#8 private key and its X.509 certificate.
type KeyPair struct {
	Version     KeyVersion `json:"version"`
	PrivateKey  []byte     `json:"private_key"`
	Certificate []byte     `json:"certificate"`
}

// KeySet holds the three keys of an EBICS user.
type KeySet struct {
	Signature      KeyPair `json:"signature"`
	Encryption     KeyPair `json:"encryption"`
	Authentication KeyPair `json:"authentication"`
	CreatedUTC     int64   `json:"created_utc"`
}

// Pair returns the key pair for version.
func (s KeySet) Pair(version KeyVersion) (KeyPair, bool) {
	switch version {
	case SignatureVersion:
		return s.Signature, true
	case EncryptionVersion:
		return s.Encryption, true
	case AuthenticationVersion:
		return s.Authentication, true
	default:
		return KeyPair{}, false
	}
}

// KeyFingerprint is a displayable fingerprint of one stored key.
type KeyFingerprint struct {
	Version     KeyVersion
	Fingerprint Fingerprint
	Text        string // two-line hex block
}
