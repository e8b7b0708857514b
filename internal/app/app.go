// Package app is the interactive terminal host for the chat widget. It
// feeds window sizes to the widget, simulates an on-screen keyboard and
// connects the conversation to a Peer.
package app

import (
	"log/slog"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/chatpane/internal/config"
	"github.com/zhubert/chatpane/internal/keys"
	"github.com/zhubert/chatpane/internal/layout"
	"github.com/zhubert/chatpane/internal/logger"
	"github.com/zhubert/chatpane/internal/message"
	"github.com/zhubert/chatpane/internal/notification"
	"github.com/zhubert/chatpane/internal/relay"
	"github.com/zhubert/chatpane/internal/ui"
)

// headerHeight is the status line above the chat.
const headerHeight = 1

// keyboardSettledMsg fires when the keyboard animation has finished.
type keyboardSettledMsg struct {
	phase ui.KeyboardPhase
}

// clearStatusMsg clears a transient status line message.
type clearStatusMsg struct {
	seq int
}

// statusTimeout is how long transient status messages stay up.
const statusTimeout = 3 * time.Second

// notify is swapped in tests.
var notify = notification.IncomingMessage

// Model is the main Bubble Tea model
type Model struct {
	config *config.Config
	chat   *ui.Chat
	peer   Peer

	width  int
	height int

	keyboardVisible bool
	keyboardHeight  int
	platform        layout.Platform
	resized         int // rows the window gave up to an Android keyboard

	windowFocused bool
	typing        string // name of the peer currently typing

	status    string
	statusSeq int

	// outgoing and pending collect what callbacks produced during one
	// widget update.
	outgoing []message.Message
	pending  []tea.Cmd

	log *slog.Logger
}

// New creates the host model.
func New(cfg *config.Config, peer Peer) *Model {
	m := &Model{
		config:         cfg,
		peer:           peer,
		keyboardHeight: cfg.Keyboard.Height,
		windowFocused:  true,
		log:            logger.WithComponent("app"),
	}
	if p, err := layout.ParsePlatform(cfg.Keyboard.Platform); err == nil {
		m.platform = p
	}

	opts := cfg.WidgetOptions()
	opts.OnSend = func(msgs []message.Message) {
		m.outgoing = append(m.outgoing, msgs...)
	}
	opts.OnQuickReply = func(replies []message.Reply) {
		titles := make([]string, len(replies))
		for i, r := range replies {
			titles[i] = r.Title
		}
		// Send records through OnSend; the reply leaves with the next flush.
		m.chat.Send(false, message.Message{Text: strings.Join(titles, ", ")})
	}
	opts.OnPressAvatar = func(u message.User) {
		m.pending = append(m.pending, m.setStatus(u.Name))
	}
	m.chat = ui.NewChat(opts)
	m.chat.SetFocused(true)
	return m
}

// Chat returns the embedded widget.
func (m *Model) Chat() *ui.Chat {
	return m.chat
}

// KeyboardVisible reports whether the simulated keyboard is up.
func (m *Model) KeyboardVisible() bool {
	return m.keyboardVisible
}

// Status returns the transient status line text.
func (m *Model) Status() string {
	return m.status
}

// Init starts listening to the peer.
func (m *Model) Init() tea.Cmd {
	return m.peer.Listen()
}

// Close shuts the peer connection.
func (m *Model) Close() error {
	m.chat.Unmount()
	return m.peer.Close()
}

// Update handles messages. Widget messages are routed to the chat; host
// messages (window, keyboard, peer) are handled here.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cmds = append(cmds, m.resizeChat())

	case tea.FocusMsg:
		m.windowFocused = true
		m.log.Debug("window focused")

	case tea.BlurMsg:
		m.windowFocused = false
		m.log.Debug("window blurred")

	case tea.KeyPressMsg:
		switch msg.String() {
		case keys.CtrlC:
			if err := m.Close(); err != nil {
				m.log.Warn("peer close failed", "error", err)
			}
			return m, tea.Quit
		case keys.CtrlK:
			return m, m.toggleKeyboard()
		}
		cmds = append(cmds, m.updateChat(msg))

	case keyboardSettledMsg:
		cmds = append(cmds, m.keyboardSettled(msg.phase))

	case relay.FrameMsg:
		cmds = append(cmds, m.handleFrame(msg.Frame), m.peer.Listen())

	case relay.ClosedMsg:
		if msg.Err != nil {
			m.log.Warn("peer disconnected", "error", msg.Err)
			cmds = append(cmds, m.setStatus("disconnected: "+msg.Err.Error()))
		} else {
			cmds = append(cmds, m.setStatus("disconnected"))
		}

	case relay.SendFailedMsg:
		cmds = append(cmds, m.setStatus("send failed: "+msg.Err.Error()))

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}

	default:
		cmds = append(cmds, m.updateChat(msg))
	}

	return m, tea.Batch(cmds...)
}

// updateChat forwards msg to the widget and ships whatever it sent.
func (m *Model) updateChat(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return tea.Batch(cmd, m.flush())
}

// flush hands messages collected from OnSend to the peer and returns the
// commands callbacks queued.
func (m *Model) flush() tea.Cmd {
	cmds := m.pending
	m.pending = nil
	if len(m.outgoing) > 0 {
		out := m.outgoing
		m.outgoing = nil
		m.log.Debug("sending to peer", "count", len(out), "peer", m.peer.Name())
		cmds = append(cmds, m.peer.Send(out))
	}
	return tea.Batch(cmds...)
}

// chatHeight is the container height handed to the widget.
func (m *Model) chatHeight() int {
	return max(0, m.height-headerHeight-m.resized)
}

func (m *Model) resizeChat() tea.Cmd {
	if m.width == 0 || m.height == 0 {
		return nil
	}
	return m.chat.SetSize(m.width, m.chatHeight())
}

// toggleKeyboard starts showing or hiding the simulated keyboard. The
// matching did-* notification follows once the animation has run.
func (m *Model) toggleKeyboard() tea.Cmd {
	if !m.chat.IsInitialized() {
		return nil
	}
	phase, settled := ui.KeyboardWillShow, ui.KeyboardDidShow
	if m.keyboardVisible {
		phase, settled = ui.KeyboardWillHide, ui.KeyboardDidHide
	}
	m.keyboardVisible = !m.keyboardVisible

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(ui.KeyboardMsg{Phase: phase, Event: ui.KeyboardEvent(m.keyboardHeight)})
	return tea.Batch(cmd, tea.Tick(layout.KeyboardAnimationDuration, func(time.Time) tea.Msg {
		return keyboardSettledMsg{phase: settled}
	}))
}

func (m *Model) keyboardSettled(phase ui.KeyboardPhase) tea.Cmd {
	// A toggle arrived mid-animation; its own settle message follows.
	if (phase == ui.KeyboardDidShow) != m.keyboardVisible {
		return nil
	}
	var cmds []tea.Cmd
	if m.platform == layout.PlatformAndroid {
		// Android resizes the window around did-show and did-hide.
		if phase == ui.KeyboardDidShow {
			m.resized = min(m.keyboardHeight, max(0, m.height-headerHeight))
		} else {
			m.resized = 0
		}
		cmds = append(cmds, m.resizeChat())
	}
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(ui.KeyboardMsg{Phase: phase, Event: ui.KeyboardEvent(m.keyboardHeight)})
	return tea.Batch(append(cmds, cmd)...)
}

// handleFrame applies a frame from the peer.
func (m *Model) handleFrame(f relay.Frame) tea.Cmd {
	switch f.Type {
	case relay.FrameTyping:
		m.typing = ""
		if f.User != nil {
			m.typing = f.User.Name
		}
		return nil
	case relay.FrameMessage:
		m.typing = ""
		if len(f.Messages) == 0 {
			return nil
		}
		m.chat.AddMessages(f.Messages...)
		if !m.windowFocused && m.config.GetNotificationsEnabled() {
			last := f.Messages[len(f.Messages)-1]
			go notify(last.User.Name, last.Text)
		}
		return nil
	}
	m.log.Debug("ignoring frame", "type", f.Type)
	return nil
}

// setStatus shows a transient status message.
func (m *Model) setStatus(text string) tea.Cmd {
	m.status = text
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// header renders the status line.
func (m *Model) header() string {
	left := "chatpane · " + m.peer.Name()
	switch {
	case m.status != "":
		left += " · " + m.status
	case m.typing != "":
		left += " · " + m.typing + " is typing..."
	}
	right := "ctrl+k keyboard · ctrl+c quit"
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	line := left + strings.Repeat(" ", gap) + right
	return ui.HeaderStyle.Width(m.width).MaxWidth(m.width).Render(line)
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true
	v.SetContent(m.render())
	return v
}

func (m *Model) render() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	screen := m.chat.ScreenView(m.height - headerHeight)
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), screen)
}
