package notification

import (
	"errors"
	"strings"
	"testing"
)

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
	}
	err error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
	}{title, message})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{name: "successful notification", title: "Title", message: "Message"},
		{name: "notification error", title: "Title", message: "Message", mockErr: errors.New("notification failed"), expectError: true},
		{name: "empty message", title: "Title", message: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)

			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != tt.title {
				t.Errorf("title = %q, want %q", mock.calls[0].title, tt.title)
			}
			if mock.calls[0].message != tt.message {
				t.Errorf("message = %q, want %q", mock.calls[0].message, tt.message)
			}
		})
	}
}

func TestIncomingMessage(t *testing.T) {
	tests := []struct {
		name          string
		from          string
		text          string
		expectedTitle string
		expectedMsg   string
	}{
		{"named sender", "Bot", "hi", "chatpane: Bot", "hi"},
		{"anonymous sender", "", "hi", "chatpane", "hi"},
		{"multi-line body", "Bot", "first\nsecond", "chatpane: Bot", "first"},
		{"styled body", "Bot", "\x1b[1mbold\x1b[0m", "chatpane: Bot", "bold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			if err := IncomingMessage(tt.from, tt.text); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != tt.expectedTitle {
				t.Errorf("title = %q, want %q", mock.calls[0].title, tt.expectedTitle)
			}
			if mock.calls[0].message != tt.expectedMsg {
				t.Errorf("message = %q, want %q", mock.calls[0].message, tt.expectedMsg)
			}
		})
	}
}

func TestPreview_Truncates(t *testing.T) {
	long := strings.Repeat("a", 200)
	got := Preview(long)
	if len([]rune(got)) != previewLength {
		t.Errorf("preview rune length = %d, want %d", len([]rune(got)), previewLength)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("preview %q should end with an ellipsis", got)
	}
}
