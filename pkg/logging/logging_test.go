package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("warn", "json", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "rows", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Output is not JSON: %v", err)
	}
	if entry["msg"] != "shown" || entry["rows"] != float64(3) {
		t.Errorf("Unexpected entry %v", entry)
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", "text", &buf)
	ctx := WithLogger(context.Background(), logger)

	FromContext(ctx).Info("hello")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("Expected text output with msg=hello, got %q", buf.String())
	}
	if FromContext(context.Background()) == nil {
		t.Error("Expected default logger for empty context")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("info", "text"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := Validate("verbose", "text"); err == nil {
		t.Error("Expected error for unknown level")
	}
	if err := Validate("info", "xml"); err == nil {
		t.Error("Expected error for unknown format")
	}
}
