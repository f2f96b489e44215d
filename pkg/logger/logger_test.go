package logger

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerInitDiscard(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("failed to initialize discard logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	logger := Get()
	if logger == nil {
		t.Fatal("logger is nil after initialization")
	}

	logger.Info(context.Background(), "test message", String("k", "v"))
}

func TestLoggerFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nba-score-cli.log")
	if err := Init(path); err != nil {
		t.Fatalf("failed to initialize file logger: %v", err)
	}

	ctx := context.Background()
	Get().Info(ctx, "score update", String("game", "0022500541"), Int("diff", 6))

	if err := Sync(); err != nil {
		t.Fatalf("failed to sync logger: %v", err)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(body), "score update") {
		t.Errorf("log file missing entry, got: %s", body)
	}
}

func TestLoggerNamed(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	namedLogger := Named("test")
	if namedLogger == nil {
		t.Fatal("named logger is nil")
	}

	namedLogger.Info(context.Background(), "test message")
}

func TestSetLevelString(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	for _, level := range []string{"debug", "info", "warn", "warning", "error", ""} {
		if err := SetLevelString(level); err != nil {
			t.Errorf("SetLevelString(%q) returned error: %v", level, err)
		}
	}
	if err := SetLevelString("loud"); err == nil {
		t.Error("SetLevelString(\"loud\") should have failed")
	}
}
