// Package notification sends desktop notifications through beeep.
package notification

import (
	"github.com/gen2brain/beeep"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/chatpane/internal/logger"
)

// AppName is the notification title prefix.
const AppName = "chatpane"

// previewLength caps the message preview shown in a notification.
const previewLength = 80

var notifier = beeep.Notify

// SetNotifier replaces the notify function. Used by tests.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores beeep.Notify.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	logger.Debug("Notification: sending title=%q", title)
	err := notifier(title, message, "")
	if err != nil {
		logger.Warn("Notification: failed to send: %v", err)
	}
	return err
}

// IncomingMessage announces a message that arrived while the chat was not
// focused. Long bodies are truncated and styling is stripped.
func IncomingMessage(from, text string) error {
	title := AppName
	if from != "" {
		title = AppName + ": " + from
	}
	return Send(title, Preview(text))
}

// Preview strips ANSI sequences and truncates text to a single-line preview.
func Preview(text string) string {
	plain := ansi.Strip(text)
	for i, r := range plain {
		if r == '\n' {
			plain = plain[:i]
			break
		}
	}
	return ansi.Truncate(plain, previewLength, "…")
}
