package domain

import (
	interfaces "ebicsletter/internal/domain/interfaces"
	types "ebicsletter/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	UserID               = types.UserID
	KeyVersion           = types.KeyVersion
	Identity             = types.Identity
	Bank                 = types.Bank
	UserRecord           = types.UserRecord
	KeyMaterial          = types.KeyMaterial
	KeyMaterialKind      = types.KeyMaterialKind
	Fingerprint          = types.Fingerprint
	FingerprintAlgorithm = types.FingerprintAlgorithm
	KeyPair              = types.KeyPair
	KeySet               = types.KeySet
	KeyFingerprint       = types.KeyFingerprint
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	UserStore     = interfaces.UserStore
	KeyStore      = interfaces.KeyStore
	LetterStore   = interfaces.LetterStore
	UserService   = interfaces.UserService
	LetterService = interfaces.LetterService
)

// Re-exported constants and constructors.
const (
	SignatureVersion      = types.SignatureVersion
	EncryptionVersion     = types.EncryptionVersion
	AuthenticationVersion = types.AuthenticationVersion

	KeyMaterialNone        = types.KeyMaterialNone
	KeyMaterialCertificate = types.KeyMaterialCertificate
	KeyMaterialRawKey      = types.KeyMaterialRawKey

	FromCertificate = types.FromCertificate
	FromRawKey      = types.FromRawKey
)

var (
	Certificate  = types.Certificate
	RawPublicKey = types.RawPublicKey
)

// Re-exported sentinel errors.
var (
	ErrUserNotFound = types.ErrUserNotFound
	ErrUserExists   = types.ErrUserExists
)
