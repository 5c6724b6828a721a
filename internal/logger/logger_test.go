package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"syscall"
	"testing"

	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.InfoLevel,
		"bogus": zapcore.InfoLevel,
	}
	for name, want := range tests {
		if got := ParseLevel(name); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log, zl := New(&buf, zapcore.InfoLevel)

	log.Error(errors.New("boom"), "load failed", "source", "./db.json", "status", 404)
	log.V(1).Info("hidden at info level")
	_ = zl.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry[MessageKey] != "load failed" {
		t.Errorf("unexpected message: %v", entry[MessageKey])
	}
	if entry["source"] != "./db.json" {
		t.Errorf("unexpected source: %v", entry["source"])
	}
	if entry["error"] != "boom" {
		t.Errorf("unexpected error: %v", entry["error"])
	}
	if _, ok := entry[TimeStampKey]; !ok {
		t.Error("expected timestamp key")
	}
}

func TestGet_NoopBeforeSetup(t *testing.T) {
	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	if Get() != &defaultNoopLogger {
		t.Error("expected no-op logger before Setup")
	}
}

func TestWithLogger_FromContext(t *testing.T) {
	log := logr.Discard()
	ctx := WithLogger(context.Background(), &log)

	if FromContext(ctx) != &log {
		t.Error("FromContext should return the stored logger")
	}
	if WithLogger(ctx, &log) != ctx {
		t.Error("WithLogger should return the same context for the same logger")
	}
	if FromContext(context.Background()) != Get() {
		t.Error("FromContext should fall back to the global logger")
	}
}

func TestIsIgnorableSyncError(t *testing.T) {
	if !isIgnorableSyncError(syscall.ENOTTY) {
		t.Error("ENOTTY should be ignorable")
	}
	if isIgnorableSyncError(errors.New("disk full")) {
		t.Error("arbitrary errors should not be ignorable")
	}
}
