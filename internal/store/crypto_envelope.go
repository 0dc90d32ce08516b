package store

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"ebicsletter/internal/util/memzero"
)

// keystoreFormatVersion is the newest encrypted key file format understood.
const keystoreFormatVersion = 1

// ErrWrongPassphrase is returned when the passphrase is incorrect or the key
// file has been modified or corrupted.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key store")

// blob is the on-disk JSON structure holding the ciphertext and KDF parameters.
type blob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

type kdfParams struct{ N, r, p int }

// Tunables for scrypt key derivation.
func scryptParamsDefault() kdfParams { return kdfParams{N: 1 << 15, r: 8, p: 1} }

// seal encrypts raw under a key derived from passphrase. The ciphertext is
// bound to owner, so a key file copied to another user fails to open.
func seal(passphrase, owner string, raw []byte, kp kdfParams) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	aead, err := newAEAD(passphrase, salt, kp)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ct := aead.Seal(nil, nonce, raw, additionalData(owner, salt))

	return json.Marshal(blob{
		V:      keystoreFormatVersion,
		Salt:   salt,
		N:      kp.N,
		R:      kp.r,
		P:      kp.p,
		Nonce:  nonce,
		Cipher: ct,
	})
}

// open decrypts a blob written by seal for owner.
func open(passphrase, owner string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, fmt.Errorf("decoding key store: %w", err)
	}
	if bl.V > keystoreFormatVersion {
		return nil, fmt.Errorf("unsupported key store version %d", bl.V)
	}

	aead, err := newAEAD(passphrase, bl.Salt, kdfParams{N: bl.N, r: bl.R, p: bl.P})
	if err != nil {
		return nil, err
	}
	if len(bl.Nonce) != aead.NonceSize() {
		return nil, ErrWrongPassphrase
	}
	pt, err := aead.Open(nil, bl.Nonce, bl.Cipher, additionalData(owner, bl.Salt))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func newAEAD(passphrase string, salt []byte, kp kdfParams) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, kp.N, kp.r, kp.p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)
	return chacha20poly1305.New(key)
}

func additionalData(owner string, salt []byte) []byte {
	ad := make([]byte, 0, len(owner)+1+len(salt))
	ad = append(ad, owner...)
	ad = append(ad, 0)
	return append(ad, salt...)
}
