package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
// Returns the path to the temp file and a cleanup function.
func setupTestLogger(t *testing.T) (string, func()) {
	t.Helper()
	Reset()

	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}

	return logPath, func() {
		Reset()
	}
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLog(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	// Debug should not panic
	Debug("test message")
	Debug("test with %s", "argument")
	Debug("test with %d and %s", 42, "string")
}

func TestClose(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	Close()
	// Logging after close is a no-op
	Info("after close")
}

func TestLogFile_Exists(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	SetDebug(true)

	testMsg := "test-unique-string-12345"
	Debug("%s", testMsg)

	if !strings.Contains(readLog(t, logPath), testMsg) {
		t.Error("Log file should contain the logged message")
	}
}

func TestLevelFiltering(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	SetLevel(LevelWarn)
	Info("info-should-be-dropped")
	Warn("warn-should-be-kept")
	Error("error-should-be-kept")

	content := readLog(t, logPath)
	if strings.Contains(content, "info-should-be-dropped") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(content, "warn-should-be-kept") || !strings.Contains(content, "error-should-be-kept") {
		t.Error("warn and error messages should be written")
	}
}

func TestWithComponent(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	WithComponent("layout").Info("component message", "height", 42)

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=layout") {
		t.Errorf("expected component attribute in log, got %q", content)
	}
	if !strings.Contains(content, "height=42") {
		t.Errorf("expected structured field in log, got %q", content)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLog_Concurrent(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	done := make(chan bool)

	for i := 0; i < 10; i++ {
		go func(n int) {
			for j := 0; j < 100; j++ {
				Debug("concurrent test %d-%d", n, j)
			}
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestReset(t *testing.T) {
	Reset()
	tmpDir := t.TempDir()
	logPath1 := filepath.Join(tmpDir, "log1.log")
	if err := Init(logPath1); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	Info("message to log1")

	// Reset and reinitialize to a different path
	Reset()

	logPath2 := filepath.Join(tmpDir, "log2.log")
	if err := Init(logPath2); err != nil {
		t.Fatalf("Failed to reinit logger: %v", err)
	}
	if Path() != logPath2 {
		t.Errorf("Path() = %q, want %q", Path(), logPath2)
	}
	Info("message to log2")

	content1 := readLog(t, logPath1)
	if !strings.Contains(content1, "message to log1") {
		t.Error("log1 should contain 'message to log1'")
	}
	if strings.Contains(content1, "message to log2") {
		t.Error("log1 should NOT contain 'message to log2'")
	}

	content2 := readLog(t, logPath2)
	if !strings.Contains(content2, "message to log2") {
		t.Error("log2 should contain 'message to log2'")
	}

	Reset()
}

func TestClearLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clear.log")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	n, err := ClearLogs(path)
	if err != nil || n != 1 {
		t.Fatalf("ClearLogs() = %d, %v; want 1, nil", n, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("log file should be gone")
	}

	n, err = ClearLogs(path)
	if err != nil || n != 0 {
		t.Errorf("ClearLogs() on a missing file = %d, %v; want 0, nil", n, err)
	}
}
