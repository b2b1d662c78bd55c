package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const EnvLogLevel = "MLSBRIDGE_LOG_LEVEL"

// levelOff is above every level slog emits.
const levelOff = slog.Level(100)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// New returns a text logger writing to stderr.
func New(profile Profile, level string) *slog.Logger {
	return NewWithWriter(os.Stderr, profile, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, profile Profile, level string) *slog.Logger {
	lvl := defaultLevel(profile)
	if l, ok := ParseLevel(level); ok {
		lvl = l
	}
	if l, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		lvl = l
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func defaultLevel(profile Profile) slog.Level {
	if profile == ProfileTest {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// ParseLevel maps a level name to a slog level. The second result is false
// for empty or unknown names.
func ParseLevel(raw string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug", "trace":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	case "off", "none", "disabled":
		return levelOff, true
	default:
		return slog.LevelInfo, false
	}
}
