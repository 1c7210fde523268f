package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	err := Init(Config{
		Debug:     false,
		ConfigDir: configDir,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	logDir := filepath.Join(configDir, "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}

	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
}

func TestInitWritesToRotatingFile(t *testing.T) {
	configDir := t.TempDir()

	if err := Init(Config{Debug: true, ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}

	Debug("request issued", "path", "/students")

	data, err := os.ReadFile(filepath.Join(configDir, "logs", "edusync.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "request issued") {
		t.Errorf("log file = %q, want it to contain the debug record", string(data))
	}
}

func TestWarnLevelFiltersDebug(t *testing.T) {
	configDir := t.TempDir()

	if err := Init(Config{Debug: false, ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	Debug("should not appear")
	Warn("should appear")

	data, err := os.ReadFile(filepath.Join(configDir, "logs", "edusync.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if strings.Contains(string(data), "should not appear") {
		t.Error("debug record written while level is warn")
	}
	if !strings.Contains(string(data), "should appear") {
		t.Error("warn record missing from log file")
	}
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// These should not panic when Logger is nil
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
}

func TestRequestLoggerAddsFields(t *testing.T) {
	cfg := Config{Debug: true, ConfigDir: t.TempDir()}
	if err := Init(cfg); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	Request("req-123", "GET", "/students").Debug("API request", "status", 200)

	data, err := os.ReadFile(cfg.Path())
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	for _, want := range []string{"request_id=req-123", "method=GET", "path=/students", "status=200"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log file missing %q:\n%s", want, data)
		}
	}
}

func TestWithBeforeInit(t *testing.T) {
	Logger = nil

	l := With("request_id", "req-1")
	if l == nil {
		t.Fatal("With returned nil before Init")
	}
	l.Error("dropped")
}

func TestConfigPath(t *testing.T) {
	cfg := Config{ConfigDir: "/tmp/edusync"}
	if got, want := cfg.Path(), filepath.Join("/tmp/edusync", "logs", "edusync.log"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
