package i18n_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"ebicsletter/internal/i18n"
)

func newTestLogger(t *testing.T, tag language.Tag, level slog.Level) (*i18n.Logger, *bytes.Buffer) {
	t.Helper()
	msgs, err := i18n.Resolve(i18n.Default(), i18n.ApplicationBundle, tag)
	require.NoError(t, err)
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level}))
	return i18n.NewLogger(log, msgs), &buf
}

func TestLogger_InfoUsesBundleText(t *testing.T) {
	log, buf := newTestLogger(t, language.German, slog.LevelInfo)

	log.Info("user.create.info", "U1")
	assert.Contains(t, buf.String(), `msg="Teilnehmer U1 wird angelegt"`)
	assert.Contains(t, buf.String(), "msg_key=user.create.info")
}

func TestLogger_ErrorAttachesCause(t *testing.T) {
	log, buf := newTestLogger(t, language.English, slog.LevelInfo)

	log.Error(errors.New("boom"), "user.create.error", "U1")
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), `msg="Could not create user U1"`)
	assert.Contains(t, buf.String(), "err=boom")
}

func TestLogger_UnknownKeyStillLogs(t *testing.T) {
	log, buf := newTestLogger(t, language.English, slog.LevelInfo)

	log.Info("no.such.key", 42)
	assert.Contains(t, buf.String(), "msg=no.such.key")
	assert.Contains(t, buf.String(), "args=[42]")
}

func TestLogger_RespectsLevel(t *testing.T) {
	log, buf := newTestLogger(t, language.English, slog.LevelError)

	log.Info("user.create.info", "U1")
	assert.Empty(t, buf.String())
}
