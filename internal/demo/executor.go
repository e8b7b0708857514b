package demo

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatpane/internal/layout"
	"github.com/zhubert/chatpane/internal/logger"
	"github.com/zhubert/chatpane/internal/message"
	"github.com/zhubert/chatpane/internal/ui"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // How long the frame stays on screen
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every key press (default: false)
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// FrameInterval is the virtual clock resolution while waiting
	// (default: the widget's animation frame interval)
	FrameInterval time.Duration

	// Start is the virtual clock's initial time
	Start time.Time
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		FrameInterval:    ui.AnimationFrameInterval,
		Start:            time.Date(2026, time.March, 2, 9, 30, 0, 0, time.Local),
	}
}

// timer is pending work on the virtual clock.
type timer struct {
	at time.Time
	fn func()
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config ExecutorConfig
	chat   *ui.Chat
	frames []Frame

	width, height  int
	keyboardHeight int
	inverted       bool
	platform       layout.Platform
	resized        int // rows the window gave up to an Android keyboard
	earlier        []message.Message

	now    time.Time
	nextID int
	timers []timer
	sent   []message.Message

	currentAnnotation string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = ui.AnimationFrameInterval
	}
	if cfg.Start.IsZero() {
		cfg.Start = DefaultExecutorConfig().Start
	}
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	e.setup(scenario)
	logger.WithComponent("demo").Debug("demo started", "scenario", scenario.Name, "steps", len(scenario.Steps))

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	return e.frames, nil
}

// Sent returns the messages the widget reported through OnSend.
func (e *Executor) Sent() []message.Message {
	return e.sent
}

// Chat returns the widget under test. It is nil before Run.
func (e *Executor) Chat() *ui.Chat {
	return e.chat
}

// setup builds the widget for the scenario.
func (e *Executor) setup(scenario *Scenario) {
	setup := scenario.Setup
	e.width = scenario.Width
	e.height = scenario.Height
	e.keyboardHeight = setup.KeyboardHeight
	e.inverted = setup.Inverted
	e.platform = setup.Platform
	e.resized = 0
	e.earlier = setup.Earlier
	e.now = e.config.Start
	e.nextID = 0
	e.timers = nil
	e.sent = nil
	e.frames = []Frame{}

	history := make([]message.Message, 0, len(setup.Messages))
	for i, m := range setup.Messages {
		if m.ID == "" {
			m.ID = e.newID(m)
		}
		if m.CreatedAt.IsZero() {
			// Seed history a minute apart, ending at the start time.
			m.CreatedAt = e.now.Add(-time.Duration(len(setup.Messages)-i) * time.Minute)
		}
		history = message.Append(history, setup.Inverted, m)
	}

	opts := ui.TerminalOptions()
	opts.User = setup.User
	opts.Messages = history
	opts.Animated = setup.Animated
	opts.Inverted = setup.Inverted
	opts.LoadEarlier = setup.LoadEarlier
	opts.Locale = setup.Locale
	opts.Platform = setup.Platform
	opts.Now = func() time.Time { return e.now }
	opts.MessageIDGenerator = e.newID
	opts.OnSend = func(msgs []message.Message) {
		e.sent = append(e.sent, msgs...)
	}
	// Callbacks only schedule work; the widget is still inside Update.
	opts.OnLoadEarlier = func() {
		e.schedule(0, func() { e.chat.SetLoadingEarlier(true) })
		e.schedule(loadEarlierDelay, e.loadEarlier)
	}
	opts.OnQuickReply = func(replies []message.Reply) {
		e.schedule(0, func() { e.chat.Send(false, quickReplyMessage(replies)) })
	}

	e.chat = ui.NewChat(opts)
	e.chat.SetFocused(true)
	e.chat.SetSize(e.width, e.height)
}

// loadEarlierDelay is how long the simulated history fetch takes.
const loadEarlierDelay = 500 * time.Millisecond

// loadEarlier prepends the setup's earlier history and hides the button.
func (e *Executor) loadEarlier() {
	batch := make([]message.Message, 0, len(e.earlier))
	for i, m := range e.earlier {
		if m.ID == "" {
			m.ID = e.newID(m)
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = e.config.Start.Add(-24*time.Hour - time.Duration(len(e.earlier)-i)*time.Minute)
		}
		batch = message.Append(batch, e.inverted, m)
	}
	e.earlier = nil
	e.chat.SetMessages(message.Prepend(e.chat.Messages(), e.inverted, batch...))
	e.chat.SetLoadingEarlier(false)
	e.chat.SetLoadEarlier(false)
}

// quickReplyMessage turns chosen replies into the message the user sends.
func quickReplyMessage(replies []message.Reply) message.Message {
	titles := make([]string, len(replies))
	for i, r := range replies {
		titles[i] = r.Title
	}
	return message.Message{Text: strings.Join(titles, ", ")}
}

func (e *Executor) newID(message.Message) string {
	e.nextID++
	return fmt.Sprintf("msg-%d", e.nextID)
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.advance(index, step.Duration)

	case StepKey:
		e.sendKey(step.Key)
		e.tick(e.config.KeyDelay)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		e.typeText(index, step.Text)

	case StepSend:
		e.typeText(index, step.Text)
		e.sendKey("enter")
		e.captureFrame(index, e.config.KeyDelay)
		// Leave time for the typing lock to lift before the next step.
		e.tick(max(e.config.KeyDelay, layout.TypingReenableDelay))

	case StepLayout:
		e.height = step.Height
		e.chat.SetSize(e.width, e.height-e.resized)
		e.captureFrame(index, 200*time.Millisecond)

	case StepKeyboard:
		height := step.Height
		if height == 0 {
			height = e.keyboardHeight
		}
		if e.platform == layout.PlatformAndroid {
			// Android resizes the window around did-show and did-hide.
			switch step.Phase {
			case ui.KeyboardDidShow:
				e.resized = min(height, e.height)
				e.chat.SetSize(e.width, e.height-e.resized)
			case ui.KeyboardDidHide:
				e.resized = 0
				e.chat.SetSize(e.width, e.height)
			}
		}
		e.update(ui.KeyboardMsg{Phase: step.Phase, Event: ui.KeyboardEvent(height)})
		if e.chat.Animating() {
			// Play the tween out before the next step.
			e.advance(index, layout.KeyboardAnimationDuration)
		} else {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepMessages:
		if !e.chat.IsInitialized() {
			return fmt.Errorf("widget not initialized")
		}
		e.chat.AddMessages(step.Messages...)
		e.captureFrame(index, 300*time.Millisecond)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)

	default:
		return fmt.Errorf("unknown step type %d", step.Type)
	}

	return nil
}

// typeText types text one character at a time.
func (e *Executor) typeText(index int, text string) {
	for _, ch := range text {
		e.sendKey(string(ch))
		e.tick(e.config.TypeDelay)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.TypeDelay)
		}
	}
}

// advance runs the clock for d, capturing a frame per tween frame and one
// frame holding the settled screen for the rest of the wait.
func (e *Executor) advance(index int, d time.Duration) {
	var held time.Duration
	for elapsed := time.Duration(0); elapsed < d; {
		step := min(e.config.FrameInterval, d-elapsed)
		elapsed += step
		held += step
		if e.step(step) {
			e.captureFrame(index, held)
			held = 0
		}
	}
	if held > 0 || d == 0 {
		e.captureFrame(index, held)
	}
}

// tick runs the clock for d without capturing.
func (e *Executor) tick(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; {
		step := min(e.config.FrameInterval, d-elapsed)
		elapsed += step
		e.step(step)
	}
}

// step moves the clock forward, fires due timers and delivers a tween
// frame. It reports whether a tween frame was delivered.
func (e *Executor) step(d time.Duration) bool {
	e.now = e.now.Add(d)

	var pending []timer
	var due []func()
	for _, t := range e.timers {
		if t.at.After(e.now) {
			pending = append(pending, t)
		} else {
			due = append(due, t.fn)
		}
	}
	e.timers = pending
	for _, fn := range due {
		fn()
	}

	if !e.chat.Animating() {
		return false
	}
	e.update(ui.AnimationFrameMsg{ID: e.chat.AnimationID(), Time: e.now})
	return true
}

func (e *Executor) schedule(after time.Duration, fn func()) {
	e.timers = append(e.timers, timer{at: e.now.Add(after), fn: fn})
}

func (e *Executor) update(msg tea.Msg) {
	e.chat, _ = e.chat.Update(msg)
}

// sendKey sends a key press to the widget. A press that sends a message
// takes the typing lock; the release timer is put on the virtual clock.
func (e *Executor) sendKey(key string) {
	locked := e.chat.IsTypingDisabled()
	e.update(keyPress(key))
	if !locked && e.chat.IsTypingDisabled() {
		e.schedule(layout.TypingReenableDelay, func() { e.update(ui.TypingEnabledMsg{}) })
	}
}

// captureFrame captures the current screen as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	frame := Frame{
		Content:    e.chat.ScreenView(e.height),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// keyPress converts a key string to a tea.KeyPressMsg.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "shift+enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}
	case "alt+enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModAlt}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "escape", "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "home":
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case "end":
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case "pgup":
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case "space", " ":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "ctrl+l":
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	case "ctrl+o":
		return tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}
	case "ctrl+y":
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	case "ctrl+a":
		return tea.KeyPressMsg{Code: 'a', Mod: tea.ModCtrl}
	case "ctrl+u":
		return tea.KeyPressMsg{Code: 'u', Mod: tea.ModCtrl}
	case "ctrl+d":
		return tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl}
	default:
		if len(key) == 5 && key[:4] == "alt+" {
			return tea.KeyPressMsg{Code: rune(key[4]), Mod: tea.ModAlt}
		}
		r := []rune(key)
		if len(r) == 1 {
			return tea.KeyPressMsg{Code: r[0], Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
