package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"ebicsletter/internal/util/eol"
)

// ErrUnsupportedDigestLength is returned when a digest is not 32 bytes long.
var ErrUnsupportedDigestLength = errors.New("unsupported digest length")

const groupsPerLine = sha256.Size / 2

// FormatHexGroups renders a 32-byte digest as two lines of sixteen
// space-terminated lowercase hex pairs, each line ending in eol.Sep.
func FormatHexGroups(sum []byte) (string, error) {
	if len(sum) != sha256.Size {
		return "", fmt.Errorf("%w: got %d bytes, want %d", ErrUnsupportedDigestLength, len(sum), sha256.Size)
	}
	var b strings.Builder
	b.Grow(3*len(sum) + 2*len(eol.Sep))
	for i, c := range sum {
		if i == groupsPerLine {
			b.WriteString(eol.Sep)
		}
		fmt.Fprintf(&b, "%02x ", c)
	}
	b.WriteString(eol.Sep)
	return b.String(), nil
}
