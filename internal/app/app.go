package app

import (
	"io"
	"log/slog"
	"os"

	"ebicsletter/internal/i18n"
)

// App is the assembled CLI application.
type App struct {
	Config Config
	Log    *slog.Logger
	*Wire
}

// Open creates home if needed, loads its configuration, applies override
// and wires the services. Log output goes to logOut.
func Open(home string, logOut io.Writer, override func(*Config)) (*App, error) {
	if err := os.MkdirAll(home, 0o700); err != nil {
		return nil, err
	}
	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}
	if override != nil {
		override(&cfg)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	log := NewLogger(logOut, cfg)
	w, err := NewWire(cfg, log)
	if err != nil {
		return nil, err
	}
	a := &App{Config: cfg, Log: log, Wire: w}
	a.info("init.configuration", cfg.Path())
	return a, nil
}

func (a *App) info(key string, args ...any) {
	i18n.NewLogger(a.Log, a.Text).Info(key, args...)
}
