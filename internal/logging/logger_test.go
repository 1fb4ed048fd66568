package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"agrideck/internal/config"
	"agrideck/internal/logging"
)

func TestConsoleLoggerFormatsComponentAndRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer closer.Close()

	ctx := logging.WithRunID(context.Background(), "1a2b3c4d-0000-0000-0000-000000000000")
	log := logging.WithContext(ctx, logging.NewComponentLogger(logger, "builder"))
	log.Info("deck saved", logging.String(logging.FieldOutput, "/tmp/deck.pptx"), logging.Int("slides", 10))

	line := buf.String()
	for _, want := range []string{"INFO [builder] run 1a2b3c4d", "deck saved", "output=/tmp/deck.pptx", "slides=10"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
	if strings.Contains(line, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", line)
	}
}

func TestConsoleLoggerHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "console", Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestJSONLoggerUsesCompactKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hello", logging.String(logging.FieldRunID, "abc"))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if payload["level"] != "info" || payload["msg"] != "hello" || payload["run_id"] != "abc" {
		t.Fatalf("unexpected payload %v", payload)
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key in %v", payload)
	}
}

func TestLoggerWritesFileCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "agrideck.log")
	var buf bytes.Buffer
	logger, closer, err := logging.New(logging.Options{Format: "console", Writer: &buf, File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "to file") {
		t.Fatalf("log file missing entry: %q", content)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer
	logger, closer, err := logging.NewFromConfig(&cfg, &buf)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	defer closer.Close()
	logger.Debug("debug message")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered at info level, got %q", buf.String())
	}
}

func TestNopLogger(t *testing.T) {
	logging.NewNop().Error("ignored")
	if logging.NewNop().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("no-op logger should report every level disabled")
	}
	logging.NewComponentLogger(nil, "pptx").Info("ignored")
}

func TestErrorAttr(t *testing.T) {
	if got := logging.Error(nil).Value.String(); got != "<nil>" {
		t.Fatalf("Error(nil) = %q", got)
	}
	err := errors.New("disk full")
	attr := logging.Error(err)
	if attr.Key != "error" || attr.Value.Any() != err {
		t.Fatalf("unexpected attr %v", attr)
	}
}
