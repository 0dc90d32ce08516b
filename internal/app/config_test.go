package app_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebicsletter/internal/app"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadConfig_Defaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := app.LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "en", cfg.Tag().String())
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Empty(t, cfg.LettersRoot())
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.Path())
}

func TestLoadConfig_FileWithExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("EBICSLETTER_TEST_LETTERS", "out")
	writeFile(t, home, "config.yaml", "locale: de-CH\nlog_level: debug\nletters_dir: ${EBICSLETTER_TEST_LETTERS}/letters\n")

	cfg, err := app.LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, "de-CH", cfg.Tag().String())
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, filepath.Join(home, "out", "letters"), cfg.LettersRoot())
}

func TestLoadConfig_DotEnvFeedsExpansion(t *testing.T) {
	home := t.TempDir()
	const key = "EBICSLETTER_TEST_DOTENV_LOCALE"
	t.Cleanup(func() { _ = os.Unsetenv(key) })
	writeFile(t, home, ".env", key+"=fr\n")
	writeFile(t, home, "config.yaml", "locale: ${"+key+"}\n")

	cfg, err := app.LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Locale)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("EBICSLETTER_LOCALE", "de")
	t.Setenv("EBICSLETTER_LETTERS_DIR", "/var/letters")
	writeFile(t, home, "config.yaml", "locale: fr\n")

	cfg, err := app.LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, "/var/letters", cfg.LettersRoot())
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	home := t.TempDir()
	writeFile(t, home, "config.yaml", "")

	cfg, err := app.LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty locale":   "locale: \"\"\n",
		"bad locale":     "locale: \"not a tag!\"\n",
		"bad log level":  "log_level: loud\n",
		"unknown key":    "colour: blue\n",
		"malformed yaml": "locale: [\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			home := t.TempDir()
			writeFile(t, home, "config.yaml", content)

			_, err := app.LoadConfig(home)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_EmptyLocaleIsConfigError(t *testing.T) {
	home := t.TempDir()
	writeFile(t, home, "config.yaml", "locale: \"\"\n")

	_, err := app.LoadConfig(home)
	assert.ErrorIs(t, err, app.ErrInvalidConfig)
}
