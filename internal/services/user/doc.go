// Package user creates EBICS users: it enforces the passphrase policy,
// generates the A005, E002 and X002 RSA keys with self-signed certificates,
// persists everything via the domain stores and produces the first set of
// initialization letters.
package user
