package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Errorf("parseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.log")

	if err := InitWithFileConfig("debug", DefaultFileConfig(path), false); err != nil {
		t.Fatalf("init: %v", err)
	}
	Log.Info("hello from the test")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Errorf("log file missing entry: %q", string(data))
	}
}

func TestInitLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.log")

	if err := InitWithFileConfig("warn", DefaultFileConfig(path), false); err != nil {
		t.Fatalf("init: %v", err)
	}
	Log.Info("below threshold")
	Log.Warn("at threshold")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "below threshold") {
		t.Error("info entry leaked past warn level")
	}
	if !strings.Contains(string(data), "at threshold") {
		t.Error("warn entry missing")
	}
}

func TestLogUsableBeforeInit(t *testing.T) {
	// The zero state is a no-op logger, not nil
	Log.Info("must not panic")
	Sugar.Infow("must not panic either")
}
