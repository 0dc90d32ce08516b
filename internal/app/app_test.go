package app_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebicsletter/internal/app"
)

func TestOpen_WiresServicesAndLogs(t *testing.T) {
	home := t.TempDir()
	var logs bytes.Buffer

	a, err := app.Open(home, &logs, func(c *app.Config) { c.Locale = "de" })
	require.NoError(t, err)
	require.NotNil(t, a.Users)
	require.NotNil(t, a.Letters)
	assert.Equal(t, "de", a.Config.Tag().String())
	assert.Contains(t, logs.String(), "Konfiguration aus")

	ids, err := a.Users.ListUsers()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestOpen_RejectsInvalidOverride(t *testing.T) {
	_, err := app.Open(t.TempDir(), &bytes.Buffer{}, func(c *app.Config) { c.LogLevel = "loud" })
	assert.ErrorIs(t, err, app.ErrInvalidConfig)
}
