package i18n

import (
	"context"
	"log/slog"
)

// Logger writes log records whose text comes from a message bundle.
type Logger struct {
	log  *slog.Logger
	msgs *MessageSet
}

// NewLogger returns a Logger that looks up texts in msgs.
func NewLogger(log *slog.Logger, msgs *MessageSet) *Logger {
	return &Logger{log: log, msgs: msgs}
}

// Info logs the message key at info level.
func (l *Logger) Info(key string, args ...any) { l.emit(slog.LevelInfo, nil, key, args) }

// Error logs the message key at error level with err attached.
func (l *Logger) Error(err error, key string, args ...any) {
	l.emit(slog.LevelError, err, key, args)
}

func (l *Logger) emit(level slog.Level, err error, key string, args []any) {
	ctx := context.Background()
	if !l.log.Enabled(ctx, level) {
		return
	}
	attrs := []slog.Attr{slog.String("msg_key", key)}
	if err != nil {
		attrs = append(attrs, slog.Any("err", err))
	}
	text, lookupErr := l.msgs.Get(key, args...)
	if lookupErr != nil {
		// Log the key and raw arguments rather than dropping the record.
		text = key
		attrs = append(attrs, slog.Any("args", args))
	}
	l.log.LogAttrs(ctx, level, text, attrs...)
}
