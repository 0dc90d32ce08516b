package i18n

import (
	"embed"
	"io/fs"
)

// Bundle names shipped with the binary.
const (
	LetterBundle      = "letter"
	ApplicationBundle = "application"
)

//go:embed bundles
var embedded embed.FS

// Default returns the bundles embedded in the binary.
func Default() fs.FS {
	sub, err := fs.Sub(embedded, "bundles")
	if err != nil {
		panic(err) // constant, valid path
	}
	return sub
}
