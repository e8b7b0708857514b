package demo

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestGenerateASCIICast(t *testing.T) {
	frames := []Frame{
		{Content: "one\ntwo", Delay: 500 * time.Millisecond},
		{Content: "three", Delay: 250 * time.Millisecond, Annotation: "note"},
		{Content: "four"},
	}

	var buf bytes.Buffer
	if err := GenerateASCIICast(&buf, frames, 60, 20); err != nil {
		t.Fatalf("GenerateASCIICast() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// header + 3 output events + 1 marker
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), buf.String())
	}

	var header castHeader
	if err := json.Unmarshal([]byte(lines[0]), &header); err != nil {
		t.Fatalf("header: %v", err)
	}
	if header.Version != 2 || header.Width != 60 || header.Height != 20 {
		t.Errorf("header = %+v", header)
	}

	tests := []struct {
		line     int
		wantTime float64
		wantKind string
		wantData string
	}{
		{1, 0, "o", clearScreen + "one\r\ntwo"},
		{2, 0.5, "m", "note"},
		{3, 0.5, "o", clearScreen + "three"},
		{4, 0.75, "o", clearScreen + "four"},
	}
	for _, tt := range tests {
		var ev []any
		if err := json.Unmarshal([]byte(lines[tt.line]), &ev); err != nil {
			t.Fatalf("line %d: %v", tt.line, err)
		}
		if len(ev) != 3 {
			t.Fatalf("line %d has %d fields", tt.line, len(ev))
		}
		if ev[0].(float64) != tt.wantTime || ev[1].(string) != tt.wantKind || ev[2].(string) != tt.wantData {
			t.Errorf("line %d = %v, want [%v %q %q]", tt.line, ev, tt.wantTime, tt.wantKind, tt.wantData)
		}
	}
}

func TestWriteCastOptions(t *testing.T) {
	var buf bytes.Buffer
	ts := time.Unix(1700000000, 0)
	if err := WriteCast(&buf, nil, 80, 24, CastOptions{Title: "demo", Timestamp: ts}); err != nil {
		t.Fatal(err)
	}

	var header castHeader
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &header); err != nil {
		t.Fatal(err)
	}
	if header.Title != "demo" || header.Timestamp != 1700000000 {
		t.Errorf("header = %+v", header)
	}
}
