package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ukaji3/dlsplot-go/internal/config"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("skipping series", "condition", "StockA", "channel", "back")
	logger.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["level"] != "warn" || entry["msg"] != "skipping series" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key in %v", entry)
	}
	if entry["condition"] != "StockA" {
		t.Fatalf("expected condition attribute, got %v", entry["condition"])
	}
}

func TestNewAutoFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "auto", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hello")
	if !strings.HasPrefix(buf.String(), "{") {
		t.Fatalf("expected JSON output for non-terminal writer, got %q", buf.String())
	}
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("resolved", "sheet", "StockA")
	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "sheet=StockA") {
		t.Fatalf("unexpected console output %q", out)
	}
}

func TestNewRejectsUnknownValues(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := New(Options{Level: "trace"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "error"
	cfg.Logging.Format = "json"
	var buf bytes.Buffer
	logger, err := NewFromConfig(&cfg, &buf)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	if logger.Enabled(t.Context(), 0) {
		t.Fatal("expected info level to be disabled")
	}
	logger.Error("render failed", "condition", "StockA")
	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Fatalf("expected json output in buffer, got %q", buf.String())
	}
}
