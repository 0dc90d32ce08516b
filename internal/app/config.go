package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFile is the name of the YAML configuration below the home directory.
	ConfigFile = "config.yaml"
	// EnvFile is an optional dotenv file loaded before the configuration.
	EnvFile = ".env"

	defaultLocale   = "en"
	defaultLogLevel = "info"
)

// ErrInvalidConfig is returned when a configuration value is unusable.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string // config directory, e.g. $HOME/.ebicsletter
	Locale     string // BCP 47 tag for letters and log texts
	LogLevel   string // debug, info, warn or error
	LettersDir string // optional; relative paths are below Home

	tag   language.Tag
	level slog.Level
}

// fileConfig mirrors Config with pointers so an explicitly empty value can
// be told apart from a missing one.
type fileConfig struct {
	Locale     *string `yaml:"locale"`
	LogLevel   *string `yaml:"log_level"`
	LettersDir *string `yaml:"letters_dir"`
}

// envConfig lists the environment variables that override the file.
type envConfig struct {
	Locale     string `env:"EBICSLETTER_LOCALE"`
	LogLevel   string `env:"EBICSLETTER_LOG_LEVEL"`
	LettersDir string `env:"EBICSLETTER_LETTERS_DIR"`
}

// LoadConfig reads <home>/.env and <home>/config.yaml. Both files are
// optional. ${VAR} references in the YAML are expanded from the environment,
// and EBICSLETTER_* variables override file values.
func LoadConfig(home string) (Config, error) {
	if err := loadEnvFile(filepath.Join(home, EnvFile)); err != nil {
		return Config{}, err
	}

	cfg := Config{Home: home}
	data, err := os.ReadFile(filepath.Join(home, ConfigFile))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading config file: %w", err)
	default:
		if err := cfg.decode(data); err != nil {
			return Config{}, err
		}
	}

	var env envConfig
	if err := cleanenv.ReadEnv(&env); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	cfg.override(env)
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func (c *Config) decode(data []byte) error {
	expanded := os.ExpandEnv(string(data))

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if fc.Locale != nil {
		if strings.TrimSpace(*fc.Locale) == "" {
			return fmt.Errorf("%w: locale is set but empty", ErrInvalidConfig)
		}
		c.Locale = *fc.Locale
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.LettersDir != nil {
		c.LettersDir = *fc.LettersDir
	}
	return nil
}

func (c *Config) override(env envConfig) {
	for _, f := range []struct {
		value string
		dst   *string
	}{
		{env.Locale, &c.Locale},
		{env.LogLevel, &c.LogLevel},
		{env.LettersDir, &c.LettersDir},
	} {
		if f.value != "" {
			*f.dst = f.value
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Locale == "" {
		c.Locale = defaultLocale
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}

// Validate parses the locale and log level.
func (c *Config) Validate() error {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return fmt.Errorf("%w: locale %q: %v", ErrInvalidConfig, c.Locale, err)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: log_level %q: %v", ErrInvalidConfig, c.LogLevel, err)
	}
	c.tag, c.level = tag, level
	return nil
}

// Tag returns the configured locale.
func (c Config) Tag() language.Tag { return c.tag }

// Level returns the configured log level.
func (c Config) Level() slog.Level { return c.level }

// LettersRoot returns the directory overriding the per-user letters
// directories, or "" when letters stay below each user's directory.
func (c Config) LettersRoot() string {
	if c.LettersDir == "" || filepath.IsAbs(c.LettersDir) {
		return c.LettersDir
	}
	return filepath.Join(c.Home, c.LettersDir)
}

// Path returns the location of the configuration file.
func (c Config) Path() string { return filepath.Join(c.Home, ConfigFile) }
