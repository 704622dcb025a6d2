package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw     string
		want    zapcore.Level
		wantErr bool
	}{
		{raw: "", want: zapcore.InfoLevel},
		{raw: " DEBUG ", want: zapcore.DebugLevel},
		{raw: "warn", want: zapcore.WarnLevel},
		{raw: "error", want: zapcore.ErrorLevel},
		{raw: "loud", wantErr: true},
	}

	for _, test := range tests {
		got, err := ParseLevel(test.raw)
		if test.wantErr {
			if err == nil {
				t.Fatalf("ParseLevel(%q) expected error", test.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseLevel(%q) returned error: %v", test.raw, err)
		}
		if got != test.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", test.raw, got, test.want)
		}
	}
}

func TestNewWritesToRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "aurora.log")

	logger, err := New(Config{Level: "info", File: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden below level")
	logger.Info("server started", zap.String("addr", ":8080"))
	_ = logger.Sync()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), `"msg":"server started"`) || !strings.Contains(string(content), `"addr":":8080"`) {
		t.Fatalf("log file missing entry: %s", content)
	}
	if strings.Contains(string(content), "hidden below level") {
		t.Fatalf("debug entry written at info level: %s", content)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Config{Level: "verbose"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
