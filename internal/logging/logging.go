// Package logging builds the application slog.Logger.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Форматы вывода
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownLevel indicates a log level name slog does not recognise
var ErrUnknownLevel = errors.New("unknown log level")

// ParseLevel converts debug, info, warn or error (any case) into a slog.Level
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
	return l, nil
}

// New creates a logger writing to w.
// format is text or json; anything else falls back to text.
func New(level, format string, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler), nil
}
