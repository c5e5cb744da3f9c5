package logger

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/dbsmedya/goeclat/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"invalid", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.expected {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LoggingConfig
	}{
		{"json to stdout", config.LoggingConfig{Level: "info", Format: "json", Output: "stdout"}},
		{"text to stderr", config.LoggingConfig{Level: "debug", Format: "text", Output: "stderr"}},
		{"defaults", config.LoggingConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(&tt.cfg)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			if log == nil {
				t.Fatal("New() returned nil logger")
			}
			log.Debug("debug message")
			log.Info("info message")
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "goeclat.log")

	log, err := New(&config.LoggingConfig{Level: "info", Format: "json", Output: logPath})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	log.Info("written to file")
}

func TestNewDefault(t *testing.T) {
	log := NewDefault()
	if log == nil {
		t.Fatal("NewDefault() returned nil")
	}
	log.Info("default logger works")
}

func TestWithDataset(t *testing.T) {
	log := NewDefault()
	dsLog := log.WithDataset("groceries")
	if dsLog == nil {
		t.Fatal("WithDataset returned nil")
	}
	dsLog.Info("dataset context attached")
}

func TestWithSource(t *testing.T) {
	log := NewDefault()
	srcLog := log.WithSource("/data/groceries.basket")
	if srcLog == nil {
		t.Fatal("WithSource returned nil")
	}
	srcLog.Info("source context attached")
}

func TestWithFields(t *testing.T) {
	log := NewDefault()
	fieldLog := log.WithFields(map[string]interface{}{
		"dataset":      "groceries",
		"transactions": 9835,
	})
	if fieldLog == nil {
		t.Fatal("WithFields returned nil")
	}
	fieldLog.Info("fields attached")
}
