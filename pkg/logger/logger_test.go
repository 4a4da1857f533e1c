package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelGating(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetLogLevel(INFO)

	SetLogLevel(WARN)
	Info("hidden %d", 1)
	Warn("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at WARN: %s", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("warn message missing: %s", out)
	}
	if IsInfoEnabled() || !IsWarnEnabled() {
		t.Error("level predicates disagree with WARN")
	}
}

func TestSetLogLevelFromString(t *testing.T) {
	defer SetLogLevel(INFO)

	SetLogLevelFromString("debug")
	if GetLogLevel() != DEBUG || !IsDebugEnabled() {
		t.Errorf("expected DEBUG, got %d", GetLogLevel())
	}
	SetLogLevelFromString("nonsense")
	if GetLogLevel() != INFO {
		t.Errorf("unknown level should fall back to INFO, got %d", GetLogLevel())
	}
}

func TestConfigureJSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	defer func() { _ = Configure(Options{Level: "info"}) }()

	if err := Configure(Options{Level: "info", Format: "json"}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	var buf bytes.Buffer
	SetOutput(&buf)
	Info("hello %s", "world")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if line["message"] != "hello world" {
		t.Errorf("unexpected message field: %v", line)
	}
}

func TestConfigureInvalid(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	if err := Configure(Options{Level: "invalid"}); err == nil {
		t.Error("expected error for invalid level")
	}
	if err := Configure(Options{Level: "info", Format: "xml"}); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestConfigureFileOutput(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	defer func() { _ = Configure(Options{Level: "info"}) }()

	path := filepath.Join(t.TempDir(), "client.log")
	if err := Configure(Options{Level: "info", Output: path, MaxAge: 1}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	Info("to file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("expected log file to contain message, got %q", data)
	}
}
