package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const defaultFile = "default.yaml"

// DefaultLocale is the locale of every bundle's default file.
var DefaultLocale = language.English

var (
	// ErrBundleNotFound is returned when no resources exist for a bundle name.
	ErrBundleNotFound = errors.New("message bundle not found")
	// ErrMissingKey is returned when a message key is absent from a resolved bundle.
	ErrMissingKey = errors.New("message key not found")
)

// MessageSet is the resolved, read-only message table of one bundle and locale.
type MessageSet struct {
	bundle   string
	locale   language.Tag
	messages map[string]string
}

// Resolve loads bundle from fsys for tag, falling back from language-region
// to language to the bundle default.
func Resolve(fsys fs.FS, bundle string, tag language.Tag) (*MessageSet, error) {
	messages, err := readBundleFile(fsys, path.Join(bundle, defaultFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrBundleNotFound, bundle)
	}
	if err != nil {
		return nil, err
	}

	resolved := DefaultLocale
	for _, candidate := range fallbackChain(tag) {
		layer, err := readBundleFile(fsys, path.Join(bundle, candidate.String()+".yaml"))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		maps.Copy(messages, layer)
		resolved = candidate
	}

	return &MessageSet{bundle: bundle, locale: resolved, messages: messages}, nil
}

// fallbackChain lists the locale files to layer over the default, least
// specific first. Only subtags stated explicitly in tag are used.
func fallbackChain(tag language.Tag) []language.Tag {
	base, conf := tag.Base()
	if conf != language.Exact {
		return nil
	}
	chain := []language.Tag{language.Make(base.String())}

	region, conf := tag.Region()
	if conf == language.Exact {
		regional, err := language.Compose(base, region)
		if err == nil {
			chain = append(chain, regional)
		}
	}
	return chain
}

func readBundleFile(fsys fs.FS, name string) (map[string]string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	messages := make(map[string]string)
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return messages, nil
}

// Bundle returns the bundle name.
func (m *MessageSet) Bundle() string { return m.bundle }

// Locale returns the most specific locale that contributed messages.
func (m *MessageSet) Locale() language.Tag { return m.locale }

// Get returns the message for key with positional placeholders {0}, {1}, …
// replaced by args.
func (m *MessageSet) Get(key string, args ...any) (string, error) {
	text, ok := m.messages[key]
	if !ok {
		return "", fmt.Errorf("%w: %q in bundle %s (%s)", ErrMissingKey, key, m.bundle, m.locale)
	}
	if len(args) == 0 {
		return text, nil
	}
	return substitute(text, args), nil
}

func substitute(pattern string, args []any) string {
	pairs := make([]string, 0, 2*len(args))
	for i, arg := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", fmt.Sprint(arg))
	}
	return strings.NewReplacer(pairs...).Replace(pattern)
}
