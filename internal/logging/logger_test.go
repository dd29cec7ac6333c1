package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNew_WritesJSONToFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, LevelInfo)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("contact created", "id", "3")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("log entry is not JSON: %v", err)
	}
	if entry["msg"] != "contact created" {
		t.Errorf("msg = %v, want %q", entry["msg"], "contact created")
	}
	if entry["id"] != "3" {
		t.Errorf("id = %v, want %q", entry["id"], "3")
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, LevelError)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("dropped")
	logger.Error("kept")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}

	if strings.Contains(string(data), "dropped") {
		t.Error("INFO entry written despite ERROR level")
	}
	if !strings.Contains(string(data), "kept") {
		t.Error("ERROR entry missing")
	}
}

func TestWith_AddsAttributes(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, LevelInfo)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	child := logger.With("component", "store")
	child.Info("listed contacts")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"component":"store"`) {
		t.Errorf("child attribute missing from entry: %s", data)
	}
}

func TestClose_Idempotent(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, LevelInfo)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()
	logger.Info("discarded")
	if err := logger.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
