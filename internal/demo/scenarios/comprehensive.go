package scenarios

import (
	"time"

	"github.com/zhubert/chatpane/internal/demo"
	"github.com/zhubert/chatpane/internal/message"
)

var bot = message.User{ID: "bot", Name: "Helper Bot"}

// Composer grows with multi-line input up to its maximum height and snaps
// back to the minimum after sending.
var Composer = &demo.Scenario{
	Name:        "composer",
	Description: "Composer grows with its text, then resets on send",
	Width:       60,
	Height:      24,
	Setup: &demo.ScenarioSetup{
		User: me,
		Messages: []message.Message{
			{Text: "Paste the stack trace here", User: bot},
		},
		Animated:       true,
		Inverted:       false,
		KeyboardHeight: 8,
	},
	Steps: []demo.Step{
		demo.Wait(500 * time.Millisecond),
		demo.Type("panic: runtime error"),
		demo.Key("shift+enter"),
		demo.Type("goroutine 1 [running]:"),
		demo.Key("shift+enter"),
		demo.Type("main.main()"),
		demo.Key("shift+enter"),
		demo.Type("    /src/main.go:12 +0x1d"),
		demo.Wait(500 * time.Millisecond),
		demo.Annotate("Composer at three lines"),
		demo.Capture(),

		demo.KeyWithDesc("enter", "Send and reset the composer"),
		demo.Wait(1 * time.Second),

		// Final pause
		demo.Wait(2 * time.Second),
	},
}

// QuickReplies walks through both reply styles and loading earlier history.
var QuickReplies = &demo.Scenario{
	Name:        "quick-replies",
	Description: "Radio and checkbox quick replies, load earlier",
	Width:       60,
	Height:      24,
	Setup: &demo.ScenarioSetup{
		User: me,
		Messages: []message.Message{
			{
				Text: "Which toppings?",
				User: bot,
				QuickReplies: &message.QuickReplies{
					Type: "checkbox",
					Values: []message.Reply{
						{Title: "Cheese", Value: "cheese"},
						{Title: "Olives", Value: "olives"},
						{Title: "Basil", Value: "basil"},
					},
				},
			},
		},
		Earlier: []message.Message{
			{Text: "Welcome back! Ready to order?", User: bot},
			{Text: "Yes please", User: me},
		},
		Animated:       true,
		Inverted:       true,
		LoadEarlier:    true,
		KeyboardHeight: 8,
	},
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),

		demo.Annotate("Toggle two choices, then confirm"),
		demo.Key("alt+1"),
		demo.Wait(300 * time.Millisecond),
		demo.Key("alt+3"),
		demo.Wait(300 * time.Millisecond),
		demo.KeyWithDesc("alt+0", "Confirm selection"),
		demo.Wait(500 * time.Millisecond),

		demo.Incoming(message.Message{
			Text: "Size?",
			User: bot,
			QuickReplies: &message.QuickReplies{
				Type: "radio",
				Values: []message.Reply{
					{Title: "Small", Value: "s"},
					{Title: "Large", Value: "l"},
				},
			},
		}),
		demo.Wait(500 * time.Millisecond),
		demo.KeyWithDesc("alt+2", "Pick one"),
		demo.Wait(500 * time.Millisecond),

		demo.KeyWithDesc("ctrl+l", "Load earlier messages"),
		demo.Wait(1 * time.Second),

		// Final pause
		demo.Wait(2 * time.Second),
	},
}
