package ui

import (
	"log/slog"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatpane/internal/layout"
	"github.com/zhubert/chatpane/internal/locale"
	"github.com/zhubert/chatpane/internal/logger"
	"github.com/zhubert/chatpane/internal/message"
)

// Chat is the chat widget: a message list above an input toolbar, kept in
// agreement with the on-screen keyboard by a layout.Engine.
type Chat struct {
	opts     Options
	rs       *Renderers
	engine   *layout.Engine
	store    *message.Store
	input    textarea.Model
	viewport viewport.Model
	sheet    *Sheet

	width   int
	text    string // uncontrolled composer text
	locale  string
	labels  locale.Labels
	focused bool

	displayed int // drawn list height
	tween     heightTween

	// checkbox quick reply toggles, by message ID
	selection map[string][]int

	log *slog.Logger
}

// NewChat creates a mounted, uninitialized chat. Nothing but the loading
// delegate is drawn until the first positive layout height arrives.
func NewChat(opts Options) *Chat {
	ti := textarea.New()
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = 0
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	applyListViewProps(&vp, opts.ListViewProps)

	c := &Chat{
		opts:      opts,
		rs:        opts.Renderers.resolve(),
		engine:    layout.NewEngine(opts.params()),
		store:     message.NewStore(opts.Messages),
		input:     ti,
		viewport:  vp,
		sheet:     NewSheet(),
		selection: make(map[string][]int),
		log:       logger.WithComponent("chat"),
	}
	c.setLocale(opts.Locale)
	c.syncComposerHeight()
	return c
}

// Default message list scrolling
const (
	defaultMouseWheelDelta = 3
)

func applyListViewProps(vp *viewport.Model, props map[string]any) {
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = defaultMouseWheelDelta
	if enabled, ok := props["mouseWheelEnabled"].(bool); ok {
		vp.MouseWheelEnabled = enabled
	}
	if delta, ok := props["mouseWheelDelta"].(int); ok && delta > 0 {
		vp.MouseWheelDelta = delta
	}
}

func (c *Chat) setLocale(code string) {
	c.locale = locale.Resolve(code)
	c.labels = locale.For(c.locale)
	if code != "" && code != c.locale {
		c.log.Debug("locale fallback", "requested", code, "resolved", c.locale)
	}
}

// Locale returns the resolved locale.
func (c *Chat) Locale() string {
	return c.locale
}

// Labels returns the strings of the resolved locale.
func (c *Chat) Labels() locale.Labels {
	return c.labels
}

// Options returns the current options.
func (c *Chat) Options() Options {
	o := c.opts
	o.Messages = c.store.Messages()
	return o
}

// Measurements returns the engine's current record.
func (c *Chat) Measurements() layout.Measurements {
	return c.engine.Measurements()
}

// Heights returns the derived heights of the current record.
func (c *Chat) Heights() layout.Heights {
	return c.engine.Heights()
}

// IsInitialized reports whether the first layout has been measured.
func (c *Chat) IsInitialized() bool {
	return c.engine.IsInitialized()
}

// IsTypingDisabled reports whether composer input is currently dropped.
func (c *Chat) IsTypingDisabled() bool {
	return c.engine.IsTypingDisabled()
}

// Messages returns the current collection in stored order.
func (c *Chat) Messages() []message.Message {
	return c.store.Messages()
}

// Text returns the displayed composer text: the controlled Text option when
// set, otherwise the local text.
func (c *Chat) Text() string {
	return c.textFromProp(c.text)
}

func (c *Chat) textFromProp(fallback string) string {
	if c.opts.Text != nil {
		return *c.opts.Text
	}
	return fallback
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// FocusTextInput focuses the composer.
func (c *Chat) FocusTextInput() {
	c.SetFocused(true)
}

// ScrollToBottom scrolls the list to the newest message.
func (c *Chat) ScrollToBottom() {
	c.viewport.GotoBottom()
}

// SetSize sets the widget width and reports the container height as a
// layout measurement.
func (c *Chat) SetSize(width, height int) tea.Cmd {
	widthChanged := width != c.width
	c.width = width
	c.viewport.SetWidth(width)
	c.input.SetWidth(c.composerWidth())
	cmd := c.layout(height)
	if widthChanged {
		c.refresh()
		return tea.Batch(cmd, c.measureComposer())
	}
	return cmd
}

// layout feeds a container measurement to the engine. The first positive
// height initializes the widget; the main view is laid out in the same pass.
func (c *Chat) layout(height int) tea.Cmd {
	var cmds []tea.Cmd
	if !c.engine.IsInitialized() {
		cmds = append(cmds, c.applyCommit(c.engine.Apply(layout.InitialLayout{Height: height})))
		if !c.engine.IsInitialized() {
			return nil
		}
		cmds = append(cmds, c.onInitialized())
	}
	cmds = append(cmds, c.applyCommit(c.engine.Apply(layout.MainLayout{Height: height})))
	return tea.Batch(cmds...)
}

// onInitialized seeds the composer once the widget can be drawn.
func (c *Chat) onInitialized() tea.Cmd {
	c.notifyInputTextReset()
	c.text = c.textFromProp(c.opts.InitialText)
	c.input.SetValue(c.text)
	c.syncComposerHeight()
	c.refresh()
	c.viewport.GotoBottom()
	c.log.Debug("chat initialized", "maxHeight", c.engine.Measurements().MaxHeight, "messages", c.store.Len())
	return c.measureComposer()
}

// SetOptions replaces the options wholesale, the way a parent re-renders
// with new props.
func (c *Chat) SetOptions(opts Options) tea.Cmd {
	c.opts = opts
	c.rs = opts.Renderers.resolve()
	c.engine.SetParams(opts.params())
	applyListViewProps(&c.viewport, opts.ListViewProps)
	c.setLocale(opts.Locale)
	c.input.Placeholder = opts.Placeholder
	c.input.SetWidth(c.composerWidth())
	c.store.Set(opts.Messages)
	c.refresh()
	return c.SetText(opts.Text)
}

// SetMessages replaces the collection. Passing the current slice again is a
// no-op.
func (c *Chat) SetMessages(msgs []message.Message) {
	c.opts.Messages = msgs
	if c.store.Set(msgs) {
		c.refresh()
	}
}

// SetText switches the composer to controlled (non-nil) or uncontrolled mode.
func (c *Chat) SetText(text *string) tea.Cmd {
	c.opts.Text = text
	if text == nil || *text == c.input.Value() {
		return nil
	}
	c.input.SetValue(*text)
	return c.measureComposer()
}

// SetLoadEarlier shows or hides the load-earlier button.
func (c *Chat) SetLoadEarlier(enabled bool) {
	c.opts.LoadEarlier = enabled
	c.refresh()
}

// SetLoadingEarlier toggles the load-earlier progress state.
func (c *Chat) SetLoadingEarlier(loading bool) {
	c.opts.IsLoadingEarlier = loading
	c.refresh()
}

// Unmount detaches the widget. Later events and timers are ignored.
func (c *Chat) Unmount() {
	c.engine.Apply(layout.Unmount{})
	c.tween.active = false
}

// IsMounted reports whether the widget is still mounted.
func (c *Chat) IsMounted() bool {
	return c.engine.IsMounted()
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	switch msg := msg.(type) {
	case LayoutMsg:
		return c, c.layout(msg.Height)

	case KeyboardMsg:
		return c, c.applyCommit(c.engine.Apply(msg.event()))

	case ComposerSizeMsg:
		commit := c.engine.Apply(layout.ComposerSizeChanged{Height: msg.Height})
		c.syncComposerHeight()
		return c, c.applyCommit(commit)

	case TypingEnabledMsg:
		if c.engine.IsMounted() {
			c.engine.Apply(layout.TypingEnabled{})
		}
		return c, nil

	case AnimationFrameMsg:
		return c, c.handleAnimationFrame(msg)

	case tea.KeyPressMsg:
		if !c.engine.IsInitialized() || !c.engine.IsMounted() {
			return c, nil
		}
		if c.opts.ActionSheet == nil && c.sheet.Visible() {
			return c, c.sheet.Update(msg)
		}
		if !c.focused {
			return c, nil
		}
		return c, c.handleKey(msg)
	}

	if c.opts.ActionSheet == nil && c.sheet.Visible() {
		return c, c.sheet.Update(msg)
	}

	if paste, ok := msg.(tea.PasteMsg); ok {
		if !c.engine.IsInitialized() || !c.focused {
			return c, nil
		}
		return c, c.editText(func() tea.Cmd {
			var cmd tea.Cmd
			c.input, cmd = c.input.Update(paste)
			return cmd
		})
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)
	c.input, cmd = c.input.Update(msg)
	cmds = append(cmds, cmd)
	return c, tea.Batch(cmds...)
}
