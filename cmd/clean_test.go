package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"lowercase yes", "yes\n", true},
		{"mixed case Yes", "Yes\n", true},
		{"lowercase n", "n\n", false},
		{"empty input", "\n", false},
		{"random text", "maybe\n", false},
		{"y with spaces", "  y  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			result := confirm(strings.NewReader(tt.input), &out, "Test?")
			if result != tt.expected {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, result, tt.expected)
			}
			if out.String() != "Test? [y/N]: " {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}

func TestConfirm_EOF(t *testing.T) {
	if confirm(strings.NewReader(""), io.Discard, "Test?") {
		t.Error("confirm(EOF) = true, want false")
	}
}

func TestConfirm_ErrorReader(t *testing.T) {
	if confirm(&errorReader{}, io.Discard, "Test?") {
		t.Error("confirm(error) = true, want false")
	}
}

// errorReader is a reader that always returns an error
type errorReader struct{}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

func TestRunClean(t *testing.T) {
	origPath, origSkip := configPath, cleanSkipConfirm
	defer func() { configPath, cleanSkipConfirm = origPath, origSkip }()

	tests := []struct {
		name       string
		input      string
		skip       bool
		createLog  bool
		wantRemove bool
		wantOutput string
	}{
		{"confirmed", "y\n", false, true, true, "Removed 1 log file(s)."},
		{"declined", "n\n", false, true, false, "Aborted."},
		{"yes flag", "", true, true, true, "Removed 1 log file(s)."},
		{"no log file", "y\n", false, false, false, "Nothing to clean."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			logPath := filepath.Join(dir, "chat.log")
			configPath = filepath.Join(dir, "config.yaml")
			if err := os.WriteFile(configPath, []byte("log_path: "+logPath+"\n"), 0o644); err != nil {
				t.Fatal(err)
			}
			if tt.createLog {
				if err := os.WriteFile(logPath, []byte("old log\n"), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			cleanSkipConfirm = tt.skip

			var out bytes.Buffer
			if err := runCleanWithReader(strings.NewReader(tt.input), &out); err != nil {
				t.Fatalf("runCleanWithReader() error = %v", err)
			}
			if !strings.Contains(out.String(), tt.wantOutput) {
				t.Errorf("output = %q, want it to contain %q", out.String(), tt.wantOutput)
			}

			_, statErr := os.Stat(logPath)
			removed := os.IsNotExist(statErr)
			if tt.createLog && removed != tt.wantRemove {
				t.Errorf("log removed = %v, want %v", removed, tt.wantRemove)
			}
		})
	}
}
