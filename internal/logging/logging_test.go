package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"WARNING", LevelWarn},
		{"error", LevelError},
		{"verbose", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(LevelWarn, &buf)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below level were written:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] shown 3") || !strings.Contains(out, "[ERROR] shown 4") {
		t.Errorf("expected warn and error lines:\n%s", out)
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(LevelDebug, &buf)
	l.sink.now = func() time.Time { return time.Date(2025, 1, 1, 12, 34, 56, 789e6, time.UTC) }

	l.With("ui").Info("seed %s", "0x1")

	if got, want := buf.String(), "12:34:56.789 [INFO] ui: seed 0x1\n"; got != want {
		t.Errorf("line = %q, want %q", got, want)
	}
}

func TestLogger_WithSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	root := NewWithWriter(LevelInfo, &buf)
	child := root.With("render")

	root.SetLevel(LevelError)
	child.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("child should follow root level, got %q", buf.String())
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starmap.log")
	l, err := OpenFile(LevelInfo, path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	l.Info("hello")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	l.Info("after close")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") || strings.Contains(string(data), "after close") {
		t.Errorf("log file = %q", data)
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing")
	if err := l.Close(); err != nil {
		t.Errorf("Close on Discard = %v", err)
	}
}
