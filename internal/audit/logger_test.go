package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T, level LogLevel) (*Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "actions.log")
	l, err := NewLogger(LogConfig{
		Enabled:   true,
		Level:     level,
		FilePath:  path,
		MaxSizeMB: 1,
		MaxFiles:  2,
	})
	if err != nil {
		t.Fatalf("NewLogger error: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l, path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	return string(data)
}

func TestLogWritesEntry(t *testing.T) {
	l, path := newTestLogger(t, LevelDebug)

	l.Log(ActionSendKey, map[string]interface{}{
		"key":       "return",
		"modifiers": "command",
	})

	content := readLog(t, path)
	if !strings.Contains(content, "[SEND-KEY]") {
		t.Errorf("log missing action tag: %q", content)
	}
	if !strings.Contains(content, `key="return"`) {
		t.Errorf("log missing key detail: %q", content)
	}
	// Keys are emitted in sorted order.
	if strings.Index(content, "key=") > strings.Index(content, "modifiers=") {
		t.Errorf("details not sorted: %q", content)
	}
}

func TestLogLevelFiltering(t *testing.T) {
	l, path := newTestLogger(t, LevelInfo)

	// Listing actions log at debug and are filtered at info level.
	l.Log(ActionListWindows, map[string]interface{}{"count": 3})
	l.Log(ActionCaptureWindow, map[string]interface{}{"window_id": 7})

	content := readLog(t, path)
	if strings.Contains(content, "LIST-WINDOWS") {
		t.Errorf("debug action logged at info level: %q", content)
	}
	if !strings.Contains(content, "CAPTURE-WINDOW") {
		t.Errorf("info action missing: %q", content)
	}
}

func TestDisabledLoggerWritesNothing(t *testing.T) {
	l, err := NewLogger(LogConfig{Enabled: false})
	if err != nil {
		t.Fatalf("NewLogger error: %v", err)
	}
	// Includes the nil receiver used when initialization failed.
	var nilLogger *Logger
	nilLogger.Log(ActionSendKey, nil)
	l.Log(ActionSendKey, nil)
}

func TestRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.log")
	l, err := NewLogger(LogConfig{
		Enabled:   true,
		Level:     LevelDebug,
		FilePath:  path,
		MaxSizeMB: 1,
		MaxFiles:  2,
	})
	if err != nil {
		t.Fatalf("NewLogger error: %v", err)
	}
	defer l.Close()

	// Push past the 1 MB threshold.
	filler := strings.Repeat("x", 4096)
	for i := 0; i < 300; i++ {
		l.Log(ActionTypeText, map[string]interface{}{"text_preview": filler, "i": fmt.Sprint(i)})
	}

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Errorf("rotated file missing: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("current log missing: %v", err)
	}
	if info.Size() > 2*1024*1024 {
		t.Errorf("current log grew to %d bytes despite rotation", info.Size())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"garbage", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("Truncate(hello, 10) = %q", got)
	}
	if got := Truncate("hello world", 5); got != "hello..." {
		t.Errorf("Truncate(hello world, 5) = %q", got)
	}
	if got := Truncate("hello", 0); got != "hello" {
		t.Errorf("Truncate(hello, 0) = %q", got)
	}
}
