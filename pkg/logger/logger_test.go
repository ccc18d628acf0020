package logger

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/syncq/go-syncq/pkg/settings"
)

// =============================================================================
// Construction Tests
// =============================================================================

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"development", DevelopmentConfig(), false},
		{"warn_level", Config{Level: "warn", OutputPaths: []string{"stdout"}}, false},
		{"empty_output_paths_fall_back", Config{Level: "info"}, false},
		{"invalid_level", Config{Level: "verbose", OutputPaths: []string{"stdout"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && l == nil {
				t.Fatal("New() returned nil logger without error")
			}
		})
	}
}

func TestNewDefault(t *testing.T) {
	l := NewDefault()
	if l == nil || l.Logger == nil {
		t.Fatal("NewDefault() returned unusable logger")
	}
	l.Info("default logger works")
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Info("discarded")
	l.Error("also discarded")
}

func TestFromSettings(t *testing.T) {
	cfg := FromSettings(settings.Logger{
		LogLevel:    "warn",
		FileLogName: "/var/log/app.log",
		MaxBackups:  5,
		MaxAge:      14,
		MaxSize:     50,
		Compress:    true,
		Development: true,
	})

	if cfg.Level != "warn" {
		t.Errorf("Level = %q, want %q", cfg.Level, "warn")
	}
	if !cfg.Development {
		t.Error("Development not carried over")
	}
	if cfg.File.Filename != "/var/log/app.log" {
		t.Errorf("File.Filename = %q, want %q", cfg.File.Filename, "/var/log/app.log")
	}
	if cfg.File.MaxSize != 50 || cfg.File.MaxBackups != 5 || cfg.File.MaxAge != 14 {
		t.Errorf("rotation fields = (%d, %d, %d), want (50, 5, 14)",
			cfg.File.MaxSize, cfg.File.MaxBackups, cfg.File.MaxAge)
	}
	if !cfg.File.Compress {
		t.Error("Compress not carried over")
	}

	l, err := New(cfg)
	if err != nil {
		t.Fatalf("New(FromSettings(...)) failed: %v", err)
	}
	if l == nil {
		t.Fatal("New() returned nil logger")
	}
}

// =============================================================================
// File Rotation Tests
// =============================================================================

func TestNew_FileOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	l, err := New(Config{
		Level: "info",
		File: FileConfig{
			Filename:   path,
			MaxSize:    1,
			MaxBackups: 2,
			MaxAge:     1,
		},
	})
	if err != nil {
		t.Fatalf("New() with file output failed: %v", err)
	}

	l.Info("written to file", zap.String("key", "value"))
	l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("log file is empty")
	}
}

// =============================================================================
// Helper Tests
// =============================================================================

func TestNamed(t *testing.T) {
	l := NewNop()
	named := l.Named("worker")
	if named == nil || named.Logger == nil {
		t.Fatal("Named() returned unusable logger")
	}
}

func TestWith(t *testing.T) {
	l := NewNop()
	child := l.With(zap.String("instance", "abc"))
	if child == nil || child.Logger == nil {
		t.Fatal("With() returned unusable logger")
	}
	child.Info("fields attached")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"bogus", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
