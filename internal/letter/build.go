package letter

import (
	"errors"
	"fmt"
	"time"

	"ebicsletter/internal/crypto"
	"ebicsletter/internal/domain"
	"ebicsletter/internal/i18n"
)

// KeyMaterialError reports unusable key material for a letter variant.
// It matches crypto.ErrInvalidKeyMaterial with errors.Is.
type KeyMaterialError struct {
	Variant domain.KeyVersion
	Err     error
}

func (e *KeyMaterialError) Error() string {
	return fmt.Sprintf("letter %s: %v", e.Variant, e.Err)
}

func (e *KeyMaterialError) Unwrap() error { return e.Err }

// Option configures Build.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock sets the time printed in the letter header.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Build produces the letter of variant v for id from km. km must have the
// form v.Proof names. Either a complete document or an error is returned.
func Build(v Variant, id domain.Identity, km domain.KeyMaterial, msgs *i18n.MessageSet, opts ...Option) (*Document, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	if km.Kind() != v.Proof {
		return nil, &KeyMaterialError{
			Variant: v.Version,
			Err:     fmt.Errorf("%w: want %s, got %s", crypto.ErrInvalidKeyMaterial, v.Proof, km.Kind()),
		}
	}
	fp, err := crypto.Digest(km)
	if errors.Is(err, crypto.ErrInvalidKeyMaterial) {
		return nil, &KeyMaterialError{Variant: v.Version, Err: err}
	}
	if err != nil {
		return nil, err
	}
	text, err := crypto.FormatHexGroups(fp.Sum)
	if err != nil {
		return nil, err
	}

	c := Content{FingerprintText: text}
	if c.Title, err = msgs.Get(v.TitleKey); err != nil {
		return nil, err
	}
	if c.FingerprintTitle, err = msgs.Get(fingerprintTitleKey); err != nil {
		return nil, err
	}
	if v.Proof == domain.KeyMaterialCertificate {
		c.Certificate = km.CertificateBytes()
		if c.CertificateTitle, err = msgs.Get(certificateTitleKey); err != nil {
			return nil, err
		}
	}

	doc, err := Layout(id, c, msgs, o.now())
	if err != nil {
		return nil, err
	}
	doc.name = v.FileName
	return doc, nil
}
