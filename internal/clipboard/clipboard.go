// Package clipboard reads and writes text on the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/chatpane/internal/errors"
	"github.com/zhubert/chatpane/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool

	// Swappable in tests so nothing touches the real clipboard.
	initFunc  = clipboard.Init
	writeFunc = func(b []byte) { clipboard.Write(clipboard.FmtText, b) }
	readFunc  = func() []byte { return clipboard.Read(clipboard.FmtText) }
)

// Init initializes the clipboard. Safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	if initialized {
		return nil
	}

	if err := initFunc(); err != nil {
		logger.Warn("Clipboard: failed to initialize: %v", err)
		return errors.ClipboardUnavailable(err)
	}

	initialized = true
	logger.Debug("Clipboard: initialized")
	return nil
}

// WriteText places text on the clipboard.
func WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	writeFunc([]byte(text))
	logger.Debug("Clipboard: wrote %d bytes", len(text))
	return nil
}

// ReadText returns the clipboard text, or "" when it holds none.
func ReadText() (string, error) {
	if err := Init(); err != nil {
		return "", err
	}
	b := readFunc()
	if b == nil {
		return "", nil
	}
	return string(b), nil
}

// reset clears the initialized flag. Used by tests.
func reset() {
	mu.Lock()
	initialized = false
	mu.Unlock()
}
