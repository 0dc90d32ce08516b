package crypto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebicsletter/internal/crypto"
	"ebicsletter/internal/util/eol"
)

func TestFormatHexGroups_AllZero(t *testing.T) {
	got, err := crypto.FormatHexGroups(make([]byte, 32))
	require.NoError(t, err)

	line := strings.Repeat("00 ", 16)
	assert.Len(t, line, 48)
	assert.Equal(t, line+eol.Sep+line+eol.Sep, got)
}

func TestFormatHexGroups_SplitsAfterSixteenBytes(t *testing.T) {
	sum := make([]byte, 32)
	for i := range sum {
		sum[i] = byte(i * 8)
	}
	got, err := crypto.FormatHexGroups(sum)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(got, eol.Sep), eol.Sep)
	require.Len(t, lines, 2)
	assert.Equal(t, "00 08 10 18 20 28 30 38 40 48 50 58 60 68 70 78 ", lines[0])
	assert.Equal(t, "80 88 90 98 a0 a8 b0 b8 c0 c8 d0 d8 e0 e8 f0 f8 ", lines[1])
}

func TestFormatHexGroups_KnownDigest(t *testing.T) {
	fp, err := crypto.Digest(crypto.RawKeyMaterial(testPublicKey(t)))
	require.NoError(t, err)

	got, err := crypto.FormatHexGroups(fp.Sum)
	require.NoError(t, err)
	assert.Equal(t,
		"7c a7 3d 79 34 6e 8a 46 76 ed 5a 66 f4 9f 47 2d "+eol.Sep+
			"90 3d b2 a6 63 b1 9c 3d b7 b1 29 c8 b9 95 d9 9f "+eol.Sep,
		got)
}

func TestFormatHexGroups_RejectsOtherLengths(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33, 64} {
		_, err := crypto.FormatHexGroups(make([]byte, n))
		assert.ErrorIs(t, err, crypto.ErrUnsupportedDigestLength, "length %d", n)
	}
}
