package ui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/chatpane/internal/layout"
)

var keyboardRows = []string{
	"q w e r t y u i o p",
	"a s d f g h j k l",
	"z x c v b n m",
	"space",
}

// KeyboardBand draws the simulated on-screen keyboard terminal hosts show
// under the chat.
func KeyboardBand(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := make([]string, height)
	first := max(0, (height-len(keyboardRows))/2)
	for i := range lines {
		row := ""
		if j := i - first; j >= 0 && j < len(keyboardRows) {
			row = KeyboardKeyStyle.Render(keyboardRows[j])
		}
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
	}
	return KeyboardStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// KeyboardEvent builds the layout payload for a keyboard of the given height.
func KeyboardEvent(height int) layout.KeyboardEvent {
	return layout.KeyboardEvent{EndCoordinates: &layout.Frame{Height: height}}
}

// ScreenView renders the chat on a screen of the given height with the
// keyboard band filling whatever the chat leaves below it. While a list tween
// runs the band grows or shrinks with it.
func (c *Chat) ScreenView(height int) string {
	view := c.View()
	screen := view
	if c.IsInitialized() {
		if band := KeyboardBand(c.width, height-lipgloss.Height(view)); band != "" {
			screen = lipgloss.JoinVertical(lipgloss.Left, view, band)
		}
	}
	return lipgloss.NewStyle().Width(c.width).Height(height).MaxHeight(height).Render(screen)
}
