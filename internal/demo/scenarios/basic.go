// Package scenarios contains built-in demo scenarios for chatpane.
package scenarios

import (
	"time"

	"github.com/zhubert/chatpane/internal/demo"
	"github.com/zhubert/chatpane/internal/message"
	"github.com/zhubert/chatpane/internal/ui"
)

var (
	me  = message.User{ID: "me", Name: "Me"}
	ada = message.User{ID: "ada", Name: "Ada Lovelace"}
)

// Basic demonstrates an everyday exchange:
// - A short history with grouped bubbles and a day separator
// - Opening the keyboard and typing a reply
// - Sending, which clears the composer and briefly locks typing
// - An incoming answer
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Open the keyboard, send a message, receive a reply",
	Width:       60,
	Height:      24,
	Setup: &demo.ScenarioSetup{
		User: me,
		Messages: []message.Message{
			{Text: "Are we still on for the review?", User: ada},
			{Text: "Yes, 3pm works", User: me, Sent: true, Received: true},
			{Text: "Great. I'll bring the **draft**.", User: ada},
		},
		Animated:       true,
		Inverted:       true,
		Locale:         "en",
		KeyboardHeight: 8,
	},
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),

		demo.Annotate("Keyboard slides in and the list shrinks"),
		demo.Keyboard(ui.KeyboardWillShow, 0),
		demo.Keyboard(ui.KeyboardDidShow, 0),
		demo.Wait(300 * time.Millisecond),

		demo.TypeWithDesc("See you there!", "Type a reply"),
		demo.Wait(500 * time.Millisecond),
		demo.KeyWithDesc("enter", "Send"),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),

		demo.Reply(ada, "👍"),
		demo.Wait(1 * time.Second),

		demo.Annotate("Keyboard hides"),
		demo.Keyboard(ui.KeyboardWillHide, 0),
		demo.Keyboard(ui.KeyboardDidHide, 0),

		// Final pause
		demo.Wait(2 * time.Second),
	},
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Basic,
		Keyboard,
		Composer,
		QuickReplies,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
