package letters

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"ebicsletter/internal/crypto"
	"ebicsletter/internal/domain"
	"ebicsletter/internal/i18n"
	"ebicsletter/internal/letter"
	"ebicsletter/internal/util/memzero"
)

// ErrKeyMismatch is returned when a stored private key does not belong to
// the certificate stored next to it.
var ErrKeyMismatch = errors.New("private key does not match certificate")

// Service creates initialization letters from stored users and keys.
type Service struct {
	users   domain.UserStore
	keys    domain.KeyStore
	letters domain.LetterStore
	text    *i18n.MessageSet
	log     *i18n.Logger
	now     func() time.Time
}

// New returns a letters service. text is the resolved letter bundle.
func New(
	users domain.UserStore,
	keys domain.KeyStore,
	letters domain.LetterStore,
	text *i18n.MessageSet,
	log *i18n.Logger,
) *Service {
	return &Service{users: users, keys: keys, letters: letters, text: text, log: log, now: time.Now}
}

// WithClock sets the time printed in letters.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateLetters builds all three letters of id and writes them. With
// useCertificates every letter carries its certificate; otherwise only X002
// does. Nothing is written unless all three letters were built.
func (s *Service) CreateLetters(id domain.UserID, passphrase string, useCertificates bool) ([]string, error) {
	s.log.Info("letters.create.info", id)

	paths, err := s.createLetters(id, passphrase, useCertificates)
	if err != nil {
		s.log.Error(err, "letters.create.error", id)
		return nil, err
	}
	s.log.Info("letters.create.success", id)
	return paths, nil
}

func (s *Service) createLetters(id domain.UserID, passphrase string, useCertificates bool) ([]string, error) {
	rec, ks, err := s.load(id, passphrase)
	if err != nil {
		return nil, err
	}

	now := s.now()
	docs := make([]*letter.Document, 0, 3)
	for _, v := range variants(useCertificates) {
		km, err := keyMaterial(v, ks)
		if err != nil {
			return nil, err
		}
		doc, err := letter.Build(v, rec.LetterIdentity(v.Version), km, s.text, letter.WithClock(func() time.Time { return now }))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	paths := make([]string, 0, len(docs))
	for _, doc := range docs {
		path, err := s.letters.SaveLetter(id, doc.Name(), doc)
		if err != nil {
			return nil, fmt.Errorf("writing %s: %w", doc.Name(), err)
		}
		s.log.Info("letters.create.written", doc.Name(), path)
		paths = append(paths, path)
	}
	return paths, nil
}

// Fingerprints returns the letter fingerprint of each stored key of id, in
// A005, E002, X002 order.
func (s *Service) Fingerprints(id domain.UserID, passphrase string, useCertificates bool) ([]domain.KeyFingerprint, error) {
	_, ks, err := s.load(id, passphrase)
	if err != nil {
		return nil, err
	}

	out := make([]domain.KeyFingerprint, 0, 3)
	for _, v := range variants(useCertificates) {
		km, err := keyMaterial(v, ks)
		if err != nil {
			return nil, err
		}
		fp, err := crypto.Digest(km)
		if err != nil {
			return nil, err
		}
		text, err := crypto.FormatHexGroups(fp.Sum)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.KeyFingerprint{Version: v.Version, Fingerprint: fp, Text: text})
	}
	return out, nil
}

func (s *Service) load(id domain.UserID, passphrase string) (domain.UserRecord, domain.KeySet, error) {
	rec, ok, err := s.users.LoadUser(id)
	if err != nil {
		return domain.UserRecord{}, domain.KeySet{}, err
	}
	if !ok {
		return domain.UserRecord{}, domain.KeySet{}, fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	ks, err := s.keys.LoadKeySet(id, passphrase)
	if err != nil {
		return domain.UserRecord{}, domain.KeySet{}, err
	}
	return rec, ks, nil
}

func variants(useCertificates bool) []letter.Variant {
	vs := letter.Variants()
	if useCertificates {
		for i := range vs {
			vs[i] = vs[i].WithProof(domain.KeyMaterialCertificate)
		}
	}
	return vs
}

// keyMaterial returns the public key material v prints, after checking the
// stored private key belongs to the stored certificate.
func keyMaterial(v letter.Variant, ks domain.KeySet) (domain.KeyMaterial, error) {
	pair, ok := ks.Pair(v.Version)
	if !ok {
		return domain.KeyMaterial{}, fmt.Errorf("no %s key stored", v.Version)
	}
	pub, err := crypto.RSAPublicKeyFromCertificate(pair.Certificate)
	if err != nil {
		return domain.KeyMaterial{}, &letter.KeyMaterialError{Variant: v.Version, Err: err}
	}
	if err := checkPrivateKey(pair.PrivateKey, pub); err != nil {
		return domain.KeyMaterial{}, fmt.Errorf("%s: %w", v.Version, err)
	}

	if v.Proof == domain.KeyMaterialCertificate {
		return domain.Certificate(crypto.CertificateBody(pair.Certificate)), nil
	}
	return crypto.RawKeyMaterial(pub), nil
}

func checkPrivateKey(der []byte, pub *rsa.PublicKey) error {
	buf := append([]byte(nil), der...)
	defer memzero.Zero(buf)

	priv, err := crypto.ParsePrivateKey(buf)
	if err != nil {
		return err
	}
	if !priv.PublicKey.Equal(pub) {
		return ErrKeyMismatch
	}
	return nil
}

// Compile-time assertion that Service implements domain.LetterService.
var _ domain.LetterService = (*Service)(nil)
