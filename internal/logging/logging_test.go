package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{" WARN ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"off", levelOff, true},
		{"", slog.LevelInfo, false},
		{"loud", slog.LevelInfo, false},
	}
	for _, tc := range cases {
		got, ok := ParseLevel(tc.in)
		require.Equal(t, tc.ok, ok, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestNewWithWriter_EnvOverride(t *testing.T) {
	r := require.New(t)
	t.Setenv(EnvLogLevel, "error")

	var buf bytes.Buffer
	log := NewWithWriter(&buf, ProfileTest, "debug")
	log.Warn("dropped")
	r.Empty(buf.String())
	log.Error("kept", "group", "05060708")
	r.Contains(buf.String(), "group=05060708")
}

func TestNewWithWriter_ProfileDefault(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	var buf bytes.Buffer
	NewWithWriter(&buf, ProfileRuntime, "").Debug("hidden")
	require.Empty(t, buf.String())

	NewWithWriter(&buf, ProfileTest, "").Debug("shown")
	require.Contains(t, buf.String(), "shown")
}
