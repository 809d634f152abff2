package logger

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger emits one JSON line per event with a fixed set of fields.
type Logger struct {
	service  string
	hostname string
	handler  *slog.Logger
}

func NewLogger(service string) *Logger {
	hostname, _ := os.Hostname()

	handler := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	return &Logger{
		service:  service,
		hostname: hostname,
		handler:  handler,
	}
}

func (l *Logger) Info(action, requestID, message string) {
	l.log(slog.LevelInfo, action, requestID, message, nil)
}

func (l *Logger) Debug(action, requestID, message string) {
	l.log(slog.LevelDebug, action, requestID, message, nil)
}

func (l *Logger) Error(action, requestID, message string, err error) {
	l.log(slog.LevelError, action, requestID, message, err)
}

func (l *Logger) log(level slog.Level, action, requestID, message string, err error) {
	attrs := []slog.Attr{
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("action", action),
	}
	if requestID != "" {
		attrs = append(attrs, slog.String("request_id", requestID))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.handler.LogAttrs(context.Background(), level, message, attrs...)
}
