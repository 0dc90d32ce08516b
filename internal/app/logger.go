package app

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w at the configured level.
func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Level()}))
}
