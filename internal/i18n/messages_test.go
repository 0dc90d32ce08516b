package i18n_test

import (
	"io/fs"
	"path"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"ebicsletter/internal/i18n"
)

func TestResolve_UnsupportedLanguageFallsBackToDefault(t *testing.T) {
	msgs, err := i18n.Resolve(i18n.Default(), i18n.LetterBundle, language.MustParse("zh-CN"))
	require.NoError(t, err)

	assert.Equal(t, i18n.DefaultLocale, msgs.Locale())
	dateFormat, err := msgs.Get("Letter.dateFormat")
	require.NoError(t, err)
	assert.Equal(t, "02.01.2006", dateFormat)
	timeFormat, err := msgs.Get("Letter.timeFormat")
	require.NoError(t, err)
	assert.Equal(t, "15:04:05", timeFormat)
}

func TestResolve_UnsupportedRegionFallsBackToLanguage(t *testing.T) {
	msgs, err := i18n.Resolve(i18n.Default(), i18n.LetterBundle, language.MustParse("de-AT"))
	require.NoError(t, err)

	assert.Equal(t, "de", msgs.Locale().String())
	label, err := msgs.Get("Letter.date")
	require.NoError(t, err)
	assert.Equal(t, "Datum", label)
}

func TestResolve_RegionInheritsFromLanguage(t *testing.T) {
	msgs, err := i18n.Resolve(i18n.Default(), i18n.LetterBundle, language.MustParse("de-CH"))
	require.NoError(t, err)

	assert.Equal(t, "de-CH", msgs.Locale().String())
	partner, err := msgs.Get("Letter.partnerId")
	require.NoError(t, err)
	assert.Equal(t, "Vertragsnummer", partner)
	user, err := msgs.Get("Letter.userId")
	require.NoError(t, err)
	assert.Equal(t, "Teilnehmer-ID", user)
}

func TestResolve_UndeterminedUsesDefault(t *testing.T) {
	msgs, err := i18n.Resolve(i18n.Default(), i18n.LetterBundle, language.Und)
	require.NoError(t, err)

	label, err := msgs.Get("Letter.bank")
	require.NoError(t, err)
	assert.Equal(t, "Bank", label)
}

func TestResolve_UnknownBundle(t *testing.T) {
	_, err := i18n.Resolve(i18n.Default(), "letter_unknown", language.English)
	require.ErrorIs(t, err, i18n.ErrBundleNotFound)
}

func TestResolve_BundleWithoutDefault(t *testing.T) {
	fsys := fstest.MapFS{
		"only/de.yaml": {Data: []byte(`greeting: "Hallo"`)},
	}
	_, err := i18n.Resolve(fsys, "only", language.German)
	require.ErrorIs(t, err, i18n.ErrBundleNotFound)
}

func TestResolve_MalformedFile(t *testing.T) {
	fsys := fstest.MapFS{
		"broken/default.yaml": {Data: []byte("greeting: [unterminated")},
	}
	_, err := i18n.Resolve(fsys, "broken", language.English)
	require.Error(t, err)
	assert.NotErrorIs(t, err, i18n.ErrBundleNotFound)
}

func TestGet_MissingKey(t *testing.T) {
	msgs, err := i18n.Resolve(i18n.Default(), i18n.LetterBundle, language.English)
	require.NoError(t, err)

	got, err := msgs.Get("Letter.nope")
	require.ErrorIs(t, err, i18n.ErrMissingKey)
	assert.Empty(t, got)
}

func TestGet_PositionalArguments(t *testing.T) {
	fsys := fstest.MapFS{
		"app/default.yaml": {Data: []byte(`moved: "Moved {0} to {1}, then {0} again"`)},
	}
	msgs, err := i18n.Resolve(fsys, "app", language.English)
	require.NoError(t, err)

	got, err := msgs.Get("moved", "a.txt", 42)
	require.NoError(t, err)
	assert.Equal(t, "Moved a.txt to 42, then a.txt again", got)
}

func TestApplicationBundle_Localized(t *testing.T) {
	msgs, err := i18n.Resolve(i18n.Default(), i18n.ApplicationBundle, language.German)
	require.NoError(t, err)

	got, err := msgs.Get("user.create.info", "U1")
	require.NoError(t, err)
	assert.Equal(t, "Teilnehmer U1 wird angelegt", got)
}

// Every key of a bundle default must exist in the shipped language files, so
// a full translation never silently mixes in English.
func TestBundles_LanguageFilesAreComplete(t *testing.T) {
	fsys := i18n.Default()
	for _, name := range []string{"letter/de.yaml", "letter/fr.yaml", "application/de.yaml"} {
		t.Run(name, func(t *testing.T) {
			def := readKeys(t, fsys, path.Join(path.Dir(name), "default.yaml"))
			localized := readKeys(t, fsys, name)
			for key := range def {
				assert.Contains(t, localized, key)
			}
		})
	}
}

func readKeys(t *testing.T, fsys fs.FS, name string) map[string]string {
	t.Helper()
	data, err := fs.ReadFile(fsys, name)
	require.NoError(t, err)
	m := make(map[string]string)
	require.NoError(t, yaml.Unmarshal(data, &m))
	return m
}
