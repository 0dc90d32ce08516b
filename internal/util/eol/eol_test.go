package eol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ebicsletter/internal/util/eol"
)

func TestLines_TerminatesEveryLine(t *testing.T) {
	assert.Equal(t, "a"+eol.Sep+eol.Sep+"b"+eol.Sep, eol.Lines("a", "", "b"))
	assert.Empty(t, eol.Lines())
}
