package app

import (
	"fmt"
	"log/slog"

	"ebicsletter/internal/domain"
	"ebicsletter/internal/i18n"
	lettersvc "ebicsletter/internal/services/letters"
	usersvc "ebicsletter/internal/services/user"
	"ebicsletter/internal/store"
)

// Wire bundles the services and message sets the CLI commands use.
type Wire struct {
	Users   domain.UserService
	Letters domain.LetterService
	// Text holds console and log texts in the configured locale.
	Text *i18n.MessageSet
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log *slog.Logger) (*Wire, error) {
	letterText, err := i18n.Resolve(i18n.Default(), i18n.LetterBundle, cfg.Tag())
	if err != nil {
		return nil, fmt.Errorf("loading letter texts: %w", err)
	}
	appText, err := i18n.Resolve(i18n.Default(), i18n.ApplicationBundle, cfg.Tag())
	if err != nil {
		return nil, fmt.Errorf("loading application texts: %w", err)
	}
	msgLog := i18n.NewLogger(log, appText)

	// File-based stores
	userStore := store.NewUserFileStore(cfg.Home)
	keyStore := store.NewKeyFileStore(cfg.Home)
	letterStore := store.NewLetterFileStore(cfg.Home, cfg.LettersRoot())

	// High-level services
	letterSvc := lettersvc.New(userStore, keyStore, letterStore, letterText, msgLog)
	userSvc := usersvc.New(userStore, keyStore, letterSvc, msgLog)

	return &Wire{
		Users:   userSvc,
		Letters: letterSvc,
		Text:    appText,
	}, nil
}
