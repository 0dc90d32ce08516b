package crypto_test

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebicsletter/internal/crypto"
)

func TestSelfSignedCertificate_RoundTrip(t *testing.T) {
	priv, err := crypto.GenerateRSA()
	require.NoError(t, err)
	assert.Equal(t, crypto.RSAKeyBits, priv.N.BitLen())

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	der, err := crypto.SelfSignedCertificate(priv, pkix.Name{CommonName: "Alice"}, now, 24*time.Hour)
	require.NoError(t, err)

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)
	assert.Equal(t, "Alice", cert.Subject.CommonName)
	assert.True(t, cert.NotAfter.Equal(now.Add(24*time.Hour)))

	pub, err := crypto.RSAPublicKeyFromCertificate(der)
	require.NoError(t, err)
	assert.True(t, pub.Equal(&priv.PublicKey))

	pkcs8, err := crypto.MarshalPrivateKey(priv)
	require.NoError(t, err)
	parsed, err := crypto.ParsePrivateKey(pkcs8)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(priv))
}

func TestRSAPublicKeyFromCertificate_Invalid(t *testing.T) {
	_, err := crypto.RSAPublicKeyFromCertificate(nil)
	require.ErrorIs(t, err, crypto.ErrInvalidKeyMaterial)
	_, err = crypto.RSAPublicKeyFromCertificate([]byte("not a certificate"))
	require.ErrorIs(t, err, crypto.ErrInvalidKeyMaterial)
}

func TestCertificateBody_MatchesPEM(t *testing.T) {
	der := make([]byte, 700)
	for i := range der {
		der[i] = byte(i)
	}
	full := string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}))
	body := strings.TrimPrefix(full, "-----BEGIN CERTIFICATE-----\n")
	body = strings.TrimSuffix(body, "-----END CERTIFICATE-----\n")

	assert.Equal(t, body, string(crypto.CertificateBody(der)))
}
