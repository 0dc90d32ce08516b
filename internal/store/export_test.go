package store

// UseFastKDF lowers the scrypt cost so tests run quickly.
func UseFastKDF(s *KeyFileStore) { s.kdf = kdfParams{N: 1 << 10, r: 8, p: 1} }
