// Package memzero wipes decrypted key material from memory.
package memzero

import "crypto/subtle"

// Zero overwrites each buffer with zeros. x XOR x is written back into x so
// the store cannot be elided as dead.
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		subtle.XORBytes(b, b, b)
	}
}
