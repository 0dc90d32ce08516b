// Package store provides file-based persistence for EBICS users.
//
// It contains concrete implementations of the domain storage interfaces.
// All methods are concurrency-safe via internal locking, and every file is
// replaced atomically (temp file, sync, rename). Files live below the
// configured home directory:
//
//   - User, partner and bank records (UserFileStore), as JSON
//   - Key sets (KeyFileStore), sealed with scrypt + ChaCha20-Poly1305
//   - Initialization letters (LetterFileStore), as plain text
package store
