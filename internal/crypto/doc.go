// Package crypto exposes the primitives behind EBICS initialization letters.
//
// Contents
//
//   - Fingerprints of certificates and raw RSA public keys (DigestCertificate,
//     DigestPublicKey, Digest)
//   - The two-line hex block printed on letters (FormatHexGroups)
//   - RSA-2048 key pairs and self-signed certificates for new users
//     (GenerateRSA, SelfSignedCertificate, CertificateBody)
//
// # Notes
//
// The raw-key digest drops the modulus sign byte and a leading
// '0' of the hash input. Both rules come from the EBICS key letter format and
// must not be normalized away.
package crypto
