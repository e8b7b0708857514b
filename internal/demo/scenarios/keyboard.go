package scenarios

import (
	"time"

	"github.com/zhubert/chatpane/internal/demo"
	"github.com/zhubert/chatpane/internal/layout"
	"github.com/zhubert/chatpane/internal/message"
	"github.com/zhubert/chatpane/internal/ui"
)

// Keyboard shows the Android keyboard path. The window itself shrinks for
// the keyboard, so the widget ignores the keyboard height and re-runs the
// will-* handling from did-show and did-hide. The screen is also resized
// mid-conversation.
var Keyboard = &demo.Scenario{
	Name:        "keyboard",
	Description: "Android keyboard notifications and a screen resize",
	Width:       60,
	Height:      24,
	Setup: &demo.ScenarioSetup{
		User: me,
		Messages: []message.Message{
			{Text: "Testing the keyboard on Android", User: me},
			{Text: "Only did-show arrives on time there", User: ada},
		},
		Animated:       true,
		Inverted:       true,
		Platform:       layout.PlatformAndroid,
		KeyboardHeight: 10,
	},
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),

		demo.Annotate("The window resizes on did-show; will-show leaves the list alone"),
		demo.Keyboard(ui.KeyboardWillShow, 0),
		demo.Wait(300 * time.Millisecond),
		demo.Keyboard(ui.KeyboardDidShow, 0),
		demo.Wait(500 * time.Millisecond),

		demo.Send("Works!"),
		demo.Wait(500 * time.Millisecond),

		demo.Keyboard(ui.KeyboardWillHide, 0),
		demo.Keyboard(ui.KeyboardDidHide, 0),
		demo.Wait(500 * time.Millisecond),

		demo.Annotate("Terminal resized"),
		demo.Layout(16),
		demo.Wait(1 * time.Second),
		demo.Layout(24),

		// Final pause
		demo.Wait(2 * time.Second),
	},
}
