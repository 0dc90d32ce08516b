package user

import (
	"crypto/rsa"
	"crypto/x509/pkix"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"ebicsletter/internal/crypto"
	"ebicsletter/internal/domain"
	"ebicsletter/internal/i18n"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12

	// certificateValidity is the lifetime of generated self-signed certificates.
	certificateValidity = 10 * 365 * 24 * time.Hour
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
	// ErrIncompleteUser is returned when a required user field is empty.
	ErrIncompleteUser = errors.New("incomplete user record")
)

// Service manages EBICS user creation using the backing stores.
//
// Each user owns three RSA keys:
//   - A005 for electronic signatures (INI letter).
//   - E002 for encryption (HIA letter).
//   - X002 for authentication (HIA letter).
type Service struct {
	users    domain.UserStore
	keys     domain.KeyStore
	letters  domain.LetterService
	log      *i18n.Logger
	generate func() (*rsa.PrivateKey, error)
	now      func() time.Time
}

// New returns a user service backed by the given stores. letters produces
// the initialization letters right after a user is created.
func New(users domain.UserStore, keys domain.KeyStore, letters domain.LetterService, log *i18n.Logger) *Service {
	return &Service{
		users:    users,
		keys:     keys,
		letters:  letters,
		log:      log,
		generate: crypto.GenerateRSA,
		now:      time.Now,
	}
}

// WithKeyGenerator replaces the RSA key generator.
func (s *Service) WithKeyGenerator(generate func() (*rsa.PrivateKey, error)) *Service {
	s.generate = generate
	return s
}

// CreateUser stores rec, generates its keys encrypted with passphrase and
// writes its initialization letters. It returns the stored record and the
// letter paths.
func (s *Service) CreateUser(rec domain.UserRecord, passphrase string) (domain.UserRecord, []string, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.UserRecord{}, nil, ErrWeakPassphrase
	}
	if err := validate(rec); err != nil {
		return domain.UserRecord{}, nil, err
	}

	s.log.Info("user.create.info", rec.UserID)
	rec, paths, err := s.createUser(rec, passphrase)
	if err != nil {
		s.log.Error(err, "user.create.error", rec.UserID)
		return domain.UserRecord{}, nil, err
	}
	s.log.Info("user.create.success", rec.UserID)
	return rec, paths, nil
}

func (s *Service) createUser(rec domain.UserRecord, passphrase string) (domain.UserRecord, []string, error) {
	_, exists, err := s.users.LoadUser(rec.UserID)
	if err != nil {
		return rec, nil, err
	}
	if exists {
		return rec, nil, fmt.Errorf("%w: %s", domain.ErrUserExists, rec.UserID)
	}

	s.log.Info("user.create.directories", rec.UserID)
	if err := s.users.CreateUserDirectories(rec.UserID); err != nil {
		return rec, nil, err
	}

	now := s.now().UTC()
	ks, err := s.generateKeySet(rec, now)
	if err != nil {
		return rec, nil, err
	}
	if err := s.keys.SaveKeySet(rec.UserID, passphrase, ks); err != nil {
		return rec, nil, err
	}

	rec.CreatedUTC = now.Unix()
	if err := s.users.SaveUser(rec); err != nil {
		return rec, nil, err
	}

	paths, err := s.letters.CreateLetters(rec.UserID, passphrase, rec.Bank.UseCertificates)
	if err != nil {
		return rec, nil, err
	}
	return rec, paths, nil
}

func (s *Service) generateKeySet(rec domain.UserRecord, now time.Time) (domain.KeySet, error) {
	ks := domain.KeySet{CreatedUTC: now.Unix()}
	for _, slot := range []struct {
		version domain.KeyVersion
		dst     *domain.KeyPair
	}{
		{domain.SignatureVersion, &ks.Signature},
		{domain.EncryptionVersion, &ks.Encryption},
		{domain.AuthenticationVersion, &ks.Authentication},
	} {
		s.log.Info("user.create.keys", slot.version, rec.UserID)
		pair, err := s.generatePair(slot.version, subject(rec), now)
		if err != nil {
			return domain.KeySet{}, fmt.Errorf("generating %s key: %w", slot.version, err)
		}
		*slot.dst = pair
	}
	return ks, nil
}

func (s *Service) generatePair(version domain.KeyVersion, subject pkix.Name, now time.Time) (domain.KeyPair, error) {
	priv, err := s.generate()
	if err != nil {
		return domain.KeyPair{}, err
	}
	cert, err := crypto.SelfSignedCertificate(priv, subject, now, certificateValidity)
	if err != nil {
		return domain.KeyPair{}, err
	}
	der, err := crypto.MarshalPrivateKey(priv)
	if err != nil {
		return domain.KeyPair{}, err
	}
	return domain.KeyPair{Version: version, PrivateKey: der, Certificate: cert}, nil
}

// LoadUser returns the stored record of id.
func (s *Service) LoadUser(id domain.UserID) (domain.UserRecord, error) {
	s.log.Info("user.load.info", id)
	rec, ok, err := s.users.LoadUser(id)
	if err != nil {
		return domain.UserRecord{}, err
	}
	if !ok {
		return domain.UserRecord{}, fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	return rec, nil
}

// ListUsers returns the IDs of all stored users.
func (s *Service) ListUsers() ([]domain.UserID, error) {
	return s.users.ListUsers()
}

func subject(rec domain.UserRecord) pkix.Name {
	name := pkix.Name{CommonName: rec.Name}
	if rec.Organization != "" {
		name.Organization = []string{rec.Organization}
	}
	if rec.Country != "" {
		name.Country = []string{strings.ToUpper(rec.Country)}
	}
	return name
}

func validate(rec domain.UserRecord) error {
	for _, f := range []struct{ name, value string }{
		{"user id", rec.UserID.String()},
		{"name", rec.Name},
		{"partner id", rec.PartnerID},
		{"host id", rec.Bank.HostID},
		{"bank name", rec.Bank.Name},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: missing %s", ErrIncompleteUser, f.name)
		}
	}
	return nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.UserService.
var _ domain.UserService = (*Service)(nil)
