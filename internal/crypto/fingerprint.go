package crypto

import (
	stdcrypto "crypto"
	"crypto/rsa"
	_ "crypto/sha256" // registers SHA-256 with crypto.Hash
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"ebicsletter/internal/domain"
)

var (
	// ErrInvalidKeyMaterial is returned for missing or empty key or certificate bytes.
	ErrInvalidKeyMaterial = errors.New("invalid key material")
	// ErrCryptoProvider is returned when SHA-256 is not available.
	ErrCryptoProvider = errors.New("digest algorithm unavailable")
)

// Digest computes the fingerprint of km with the algorithm matching its form.
func Digest(km domain.KeyMaterial) (domain.Fingerprint, error) {
	switch km.Kind() {
	case domain.KeyMaterialCertificate:
		return DigestCertificate(km.CertificateBytes())
	case domain.KeyMaterialRawKey:
		return DigestPublicKey(km.Modulus(), km.Exponent())
	default:
		return domain.Fingerprint{}, fmt.Errorf("%w: no key material", ErrInvalidKeyMaterial)
	}
}

// DigestCertificate returns the SHA-256 of the certificate bytes exactly as
// supplied. No decoding or re-encoding takes place.
func DigestCertificate(raw []byte) (domain.Fingerprint, error) {
	if len(raw) == 0 {
		return domain.Fingerprint{}, fmt.Errorf("%w: empty certificate", ErrInvalidKeyMaterial)
	}
	sum, err := sha256Sum(raw)
	if err != nil {
		return domain.Fingerprint{}, err
	}
	return domain.Fingerprint{Sum: sum, Algorithm: domain.FromCertificate}, nil
}

// DigestPublicKey returns the EBICS public key hash of an RSA key.
//
// The hash input is "<exponent hex> <modulus hex>" in lowercase, where the
// modulus loses its first (sign) byte, and a leading '0' of the whole string
// is dropped. Banks verify exactly this byte sequence.
func DigestPublicKey(modulus, exponent []byte) (domain.Fingerprint, error) {
	input, err := publicKeyHashInput(modulus, exponent)
	if err != nil {
		return domain.Fingerprint{}, err
	}
	sum, err := sha256Sum([]byte(input))
	if err != nil {
		return domain.Fingerprint{}, err
	}
	return domain.Fingerprint{Sum: sum, Algorithm: domain.FromRawKey}, nil
}

func publicKeyHashInput(modulus, exponent []byte) (string, error) {
	if len(exponent) == 0 {
		return "", fmt.Errorf("%w: empty exponent", ErrInvalidKeyMaterial)
	}
	// One byte is dropped, so at least one must remain.
	if len(modulus) < 2 {
		return "", fmt.Errorf("%w: modulus too short", ErrInvalidKeyMaterial)
	}
	s := hex.EncodeToString(exponent) + " " + hex.EncodeToString(modulus[1:])
	return strings.TrimPrefix(s, "0"), nil
}

func sha256Sum(b []byte) ([]byte, error) {
	if !stdcrypto.SHA256.Available() {
		return nil, ErrCryptoProvider
	}
	h := stdcrypto.SHA256.New()
	h.Write(b)
	return h.Sum(nil), nil
}

// RawKeyMaterial encodes pub the way DigestPublicKey expects: big-endian
// two's-complement, so a modulus with its top bit set gains a zero sign byte.
func RawKeyMaterial(pub *rsa.PublicKey) domain.KeyMaterial {
	return domain.RawPublicKey(signedBytes(pub.N), signedBytes(big.NewInt(int64(pub.E))))
}

// signedBytes returns the minimal two's-complement encoding of a non-negative n.
func signedBytes(n *big.Int) []byte {
	b := n.Bytes()
	if len(b) == 0 || b[0]&0x80 != 0 {
		return append([]byte{0}, b...)
	}
	return b
}
