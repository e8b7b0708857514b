// Package demo runs scripted scenarios against a real chat widget and records
// the rendered screens. A virtual clock drives timers and tweens so that runs
// are deterministic and finish instantly.
package demo

import (
	"strconv"
	"time"

	"github.com/zhubert/chatpane/internal/errors"
	"github.com/zhubert/chatpane/internal/layout"
	"github.com/zhubert/chatpane/internal/message"
	"github.com/zhubert/chatpane/internal/ui"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait lets the virtual clock run (timers fire, tweens advance).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepLayout resizes the screen, which reaches the widget as a layout
	// measurement.
	StepLayout
	// StepKeyboard delivers an on-screen keyboard notification.
	StepKeyboard
	// StepSend types a message and presses enter.
	StepSend
	// StepMessages delivers messages from other participants.
	StepMessages
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
)

var stepNames = map[StepType]string{
	StepWait:     "wait",
	StepKey:      "key",
	StepTypeText: "type",
	StepLayout:   "layout",
	StepKeyboard: "keyboard",
	StepSend:     "send",
	StepMessages: "messages",
	StepCapture:  "capture",
	StepAnnotate: "annotate",
}

func (t StepType) String() string {
	if name, ok := stepNames[t]; ok {
		return name
	}
	return "unknown"
}

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText and StepSend
	Text string

	// For StepWait
	Duration time.Duration

	// For StepLayout (screen height) and StepKeyboard (keyboard height, 0
	// means the setup default)
	Height int

	// For StepKeyboard
	Phase ui.KeyboardPhase

	// For StepMessages
	Messages []message.Message

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 60)
	Height      int // Terminal height (default 20)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state of the widget.
type ScenarioSetup struct {
	User message.User

	// Messages are listed oldest first regardless of Inverted.
	Messages []message.Message
	// Earlier is delivered, oldest first, when the user loads earlier
	// messages.
	Earlier []message.Message

	Animated       bool
	Inverted       bool
	LoadEarlier    bool
	Locale         string
	Platform       layout.Platform
	KeyboardHeight int
}

// Default scenario dimensions
const (
	DefaultWidth          = 60
	DefaultHeight         = 20
	DefaultKeyboardHeight = 8
)

// DefaultSetup returns a minimal setup for demos.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		User:           message.User{ID: "me", Name: "Me"},
		Animated:       true,
		Inverted:       true,
		Locale:         "en",
		Platform:       layout.PlatformIOS,
		KeyboardHeight: DefaultKeyboardHeight,
	}
}

// Validate checks that the scenario is valid and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return errors.ScenarioInvalid("name", "scenario name is required")
	}
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultHeight
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	if s.Setup.User.ID == "" {
		return errors.ScenarioInvalid("setup.user.id", "local user id is required")
	}
	if s.Setup.KeyboardHeight <= 0 {
		s.Setup.KeyboardHeight = DefaultKeyboardHeight
	}
	for i, step := range s.Steps {
		switch step.Type {
		case StepWait:
			if step.Duration < 0 {
				return errors.ScenarioInvalid(stepField(i, "duration"), "must not be negative")
			}
		case StepKey:
			if step.Key == "" {
				return errors.ScenarioInvalid(stepField(i, "key"), "key is required")
			}
		case StepLayout:
			if step.Height <= 0 {
				return errors.ScenarioInvalid(stepField(i, "height"), "must be positive")
			}
		case StepKeyboard:
			if step.Height < 0 {
				return errors.ScenarioInvalid(stepField(i, "height"), "must not be negative")
			}
		case StepMessages:
			if len(step.Messages) == 0 {
				return errors.ScenarioInvalid(stepField(i, "messages"), "at least one message is required")
			}
		}
	}
	return nil
}

func stepField(i int, field string) string {
	return "steps[" + strconv.Itoa(i) + "]." + field
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// TypeWithDesc creates a text typing step with a description.
func TypeWithDesc(text, description string) Step {
	return Step{
		Type:        StepTypeText,
		Text:        text,
		Description: description,
	}
}

// Layout creates a screen resize step.
func Layout(height int) Step {
	return Step{
		Type:   StepLayout,
		Height: height,
	}
}

// Keyboard creates a keyboard notification step. A zero height uses the
// setup's keyboard height.
func Keyboard(phase ui.KeyboardPhase, height int) Step {
	return Step{
		Type:   StepKeyboard,
		Phase:  phase,
		Height: height,
	}
}

// Send creates a step that types text and presses enter.
func Send(text string) Step {
	return Step{
		Type: StepSend,
		Text: text,
	}
}

// Incoming creates a step delivering messages from other participants.
func Incoming(msgs ...message.Message) Step {
	return Step{
		Type:     StepMessages,
		Messages: msgs,
	}
}

// Reply creates a step delivering a single text message from user.
func Reply(user message.User, text string) Step {
	return Incoming(message.Message{Text: text, User: user})
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
