package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := parseLogLevel(tc.in); got != tc.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLoggingBeforeInitializeIsSafe(t *testing.T) {
	saved := logger
	logger = nil
	defer func() { logger = saved }()

	// None of these may panic with no logger configured
	Debug("debug")
	Info("info")
	Warning("warning")
	Error("error")
}

func TestInitializeFileLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	err := Initialize(Config{
		Level:          "DEBUG",
		ConsoleEnabled: false,
		FileEnabled:    true,
		FilePath:       path,
		FileFormat:     "text",
		FileMaxSizeMB:  1,
	})
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	Info("room transition", "index", 7)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "room transition") {
		t.Errorf("log file missing message: %s", data)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Level != "INFO" {
		t.Errorf("default level = %q, want INFO", cfg.Level)
	}
	if !cfg.ConsoleEnabled {
		t.Error("console should default enabled")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yaml")
	content := `
logging:
  level: DEBUG
  console_enabled: true
  console_format: json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Level != "DEBUG" {
		t.Errorf("level = %q, want DEBUG", cfg.Level)
	}
	if cfg.ConsoleFormat != "json" {
		t.Errorf("console format = %q, want json", cfg.ConsoleFormat)
	}
}
