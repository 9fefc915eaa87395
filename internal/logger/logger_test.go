package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("debug message", nil)
	l.Info("info message", nil)
	l.Warn("warn message", nil, nil)
	l.Error("error message", nil, nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines at WARN level, got %d: %q", len(lines), buf.String())
	}

	var entry LogEntry
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if entry.Level != string(LevelWarn) {
		t.Errorf("first entry level = %q, want %q", entry.Level, LevelWarn)
	}
	if entry.Message != "warn message" {
		t.Errorf("first entry message = %q, want %q", entry.Message, "warn message")
	}
	if entry.Timestamp == "" {
		t.Error("entry timestamp is empty")
	}
}

func TestLoggerFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Warn("parse failed", Fields{"region": "Poznań"}, errors.New("bad month"))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if entry.Fields["region"] != "Poznań" {
		t.Errorf("fields[region] = %v, want %q", entry.Fields["region"], "Poznań")
	}
	if entry.Error != "bad month" {
		t.Errorf("entry error = %q, want %q", entry.Error, "bad month")
	}
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	old := getDefault()
	SetDefault(New(LevelInfo, &buf))
	defer SetDefault(old)

	Info("hello", nil)
	Debug("hidden", nil)

	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("default logger did not write info message: %q", buf.String())
	}
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("default logger wrote debug message below min level: %q", buf.String())
	}
}
