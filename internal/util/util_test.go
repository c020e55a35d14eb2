package util

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSetupLoggingLevels(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	SetupLogging(&buf, "warn")
	slog.Info("hidden")
	slog.Warn("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("info should be filtered at WARN")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected warn output, got %q", buf.String())
	}
}

func TestLogErrorAndComponent(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	SetupLogging(&buf, "bogus")
	LogError("ctx", nil)
	if buf.Len() != 0 {
		t.Fatalf("nil error should not log")
	}
	LogError("save run", errors.New("disk full"))
	Logger("timer").Debug("hidden at info")
	Logger("timer").Info("tick")
	out := buf.String()
	if !strings.Contains(out, "save run") || !strings.Contains(out, "disk full") {
		t.Fatalf("expected error log, got %q", out)
	}
	if !strings.Contains(out, "component=timer") {
		t.Fatalf("expected component field, got %q", out)
	}
	if strings.Contains(out, "hidden at info") {
		t.Fatalf("debug should be filtered at INFO")
	}
}

func TestDirsHonourXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/config")
	if got := DataDir("stretch"); got != filepath.Join("/tmp/data", "stretch") {
		t.Fatalf("DataDir = %q", got)
	}
	if got := ConfigDir("stretch"); got != filepath.Join("/tmp/config", "stretch") {
		t.Fatalf("ConfigDir = %q", got)
	}
}

func TestParseUserDir(t *testing.T) {
	data := "# comment\nXDG_DOCUMENTS_DIR=\"$HOME/Docs\"\n"
	if got := parseUserDir(data, "XDG_DOCUMENTS_DIR"); got != "$HOME/Docs" {
		t.Fatalf("parseUserDir = %q", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Fatalf("Clamp misbehaved")
	}
	if ClampFloat(1.5, 0, 1) != 1 {
		t.Fatalf("ClampFloat misbehaved")
	}
	if Plural(1, "run", "runs") != "run" || Plural(2, "run", "runs") != "runs" {
		t.Fatalf("Plural misbehaved")
	}
}

func TestCeilSeconds(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want int
	}{
		{0, 0},
		{-time.Second, 0},
		{time.Nanosecond, 1},
		{time.Second, 1},
		{1500 * time.Millisecond, 2},
		{30 * time.Second, 30},
	}
	for _, tt := range tests {
		if got := CeilSeconds(tt.in); got != tt.want {
			t.Errorf("CeilSeconds(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
