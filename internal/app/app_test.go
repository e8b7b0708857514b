package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/chatpane/internal/config"
	"github.com/zhubert/chatpane/internal/message"
	"github.com/zhubert/chatpane/internal/relay"
	"github.com/zhubert/chatpane/internal/ui"
)

// fakePeer records what the host sends.
type fakePeer struct {
	sent   [][]message.Message
	closed bool
}

func (p *fakePeer) Name() string { return "fake" }

func (p *fakePeer) Send(msgs []message.Message) tea.Cmd {
	p.sent = append(p.sent, msgs)
	return nil
}

func (p *fakePeer) Listen() tea.Cmd { return nil }

func (p *fakePeer) Close() error {
	p.closed = true
	return nil
}

func testConfig(t *testing.T, yaml string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return cfg
}

func newTestModel(t *testing.T, yaml string) (*Model, *fakePeer) {
	t.Helper()
	peer := &fakePeer{}
	m := New(testConfig(t, yaml), peer)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 21})
	return m, peer
}

func typeInto(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t, "user:\n  id: me\n  name: Me\n")
	if !m.Chat().IsInitialized() {
		t.Fatal("chat should initialize after the first window size")
	}
	// 21 rows less the header gives the widget 20; the toolbar takes 3.
	if got := m.Chat().Measurements().ContainerHeight; got != 17 {
		t.Errorf("ContainerHeight = %d, want 17", got)
	}
}

func TestModel_ViewBeforeSize(t *testing.T) {
	m := New(testConfig(t, ""), &fakePeer{})
	v := m.View()
	if !v.AltScreen {
		t.Error("View should use the alt screen")
	}
	if !v.ReportFocus {
		t.Error("View should report focus")
	}
	if got := ansi.Strip(m.render()); got != "Loading..." {
		t.Errorf("render() = %q, want Loading...", got)
	}
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel(t, "")
	lines := strings.Split(ansi.Strip(m.render()), "\n")
	if len(lines) != 21 {
		t.Fatalf("got %d lines, want 21", len(lines))
	}
	if !strings.Contains(lines[0], "chatpane · fake") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[0], "ctrl+c quit") {
		t.Errorf("header should list key hints, got %q", lines[0])
	}
}

func TestModel_SendReachesPeer(t *testing.T) {
	m, peer := newTestModel(t, "")
	typeInto(m, " hello ")
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if len(peer.sent) != 1 {
		t.Fatalf("peer got %d sends, want 1", len(peer.sent))
	}
	if got := peer.sent[0][0].Text; got != "hello" {
		t.Errorf("sent text = %q, want trimmed hello", got)
	}
	if got := len(m.Chat().Messages()); got != 1 {
		t.Errorf("chat has %d messages, want the local copy", got)
	}
	if m.Chat().Text() != "" {
		t.Errorf("composer should be cleared, got %q", m.Chat().Text())
	}
}

func TestModel_IncomingFrame(t *testing.T) {
	m, _ := newTestModel(t, "")
	frame := relay.Frame{
		Type:     relay.FrameMessage,
		Messages: []message.Message{{ID: "r1", Text: "hi there", User: EchoUser, CreatedAt: time.Now()}},
	}
	m.Update(relay.FrameMsg{Frame: frame})

	msgs := m.Chat().Messages()
	if len(msgs) != 1 || msgs[0].ID != "r1" {
		t.Fatalf("messages = %+v, want r1", msgs)
	}
}

func TestModel_TypingFrame(t *testing.T) {
	m, _ := newTestModel(t, "")
	m.Update(relay.FrameMsg{Frame: relay.Frame{Type: relay.FrameTyping, User: &EchoUser}})
	if !strings.Contains(ansi.Strip(m.header()), "Echo Bot is typing") {
		t.Errorf("header = %q, want typing indicator", ansi.Strip(m.header()))
	}

	m.Update(relay.FrameMsg{Frame: relay.Frame{Type: relay.FrameMessage, Messages: []message.Message{{ID: "r1", Text: "x", User: EchoUser}}}})
	if strings.Contains(ansi.Strip(m.header()), "typing") {
		t.Error("a message should clear the typing indicator")
	}
}

func TestModel_Notification(t *testing.T) {
	calls := make(chan string, 1)
	orig := notify
	notify = func(from, text string) error {
		calls <- from + ": " + text
		return nil
	}
	defer func() { notify = orig }()

	tests := []struct {
		name    string
		yaml    string
		blurred bool
		want    bool
	}{
		{"blurred and enabled", "notifications: true\n", true, true},
		{"focused", "notifications: true\n", false, false},
		{"disabled", "notifications: false\n", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, tt.yaml)
			if tt.blurred {
				m.Update(tea.BlurMsg{})
			}
			frame := relay.Frame{Type: relay.FrameMessage, Messages: []message.Message{{ID: "r1", Text: "ping", User: EchoUser}}}
			m.Update(relay.FrameMsg{Frame: frame})

			select {
			case got := <-calls:
				if !tt.want {
					t.Errorf("unexpected notification %q", got)
				} else if got != "Echo Bot: ping" {
					t.Errorf("notification = %q", got)
				}
			case <-time.After(200 * time.Millisecond):
				if tt.want {
					t.Error("expected a notification")
				}
			}
		})
	}
}

func TestModel_KeyboardToggle(t *testing.T) {
	m, _ := newTestModel(t, "keyboard:\n  height: 5\n")

	m.Update(tea.KeyPressMsg{Code: 'k', Mod: tea.ModCtrl})
	if !m.KeyboardVisible() {
		t.Fatal("ctrl+k should show the keyboard")
	}
	if !m.Chat().IsTypingDisabled() {
		t.Error("typing should be locked while the keyboard shows")
	}

	m.Update(keyboardSettledMsg{phase: ui.KeyboardDidShow})
	if m.Chat().IsTypingDisabled() {
		t.Error("did-show should lift the typing lock")
	}
	if got := m.Chat().Measurements().ContainerHeight; got != 12 {
		t.Errorf("ContainerHeight = %d, want 12", got)
	}

	m.Update(tea.KeyPressMsg{Code: 'k', Mod: tea.ModCtrl})
	if m.KeyboardVisible() {
		t.Fatal("second ctrl+k should hide the keyboard")
	}
	// A settle left over from the show is ignored.
	m.Update(keyboardSettledMsg{phase: ui.KeyboardDidShow})
	m.Update(keyboardSettledMsg{phase: ui.KeyboardDidHide})
	if got := m.Chat().Measurements().ContainerHeight; got != 17 {
		t.Errorf("ContainerHeight after hide = %d, want 17", got)
	}
}

func TestModel_KeyboardAndroid(t *testing.T) {
	m, _ := newTestModel(t, "keyboard:\n  height: 6\n  platform: android\n")

	m.Update(tea.KeyPressMsg{Code: 'k', Mod: tea.ModCtrl})
	m.Update(keyboardSettledMsg{phase: ui.KeyboardDidShow})
	if m.resized != 6 {
		t.Errorf("resized = %d, want 6", m.resized)
	}
	// The window shrank to 14 rows; the composer toolbar keeps 3.
	if got := m.Chat().Measurements().ContainerHeight; got != 11 {
		t.Errorf("ContainerHeight = %d, want 11", got)
	}

	m.Update(tea.KeyPressMsg{Code: 'k', Mod: tea.ModCtrl})
	m.Update(keyboardSettledMsg{phase: ui.KeyboardDidHide})
	if m.resized != 0 {
		t.Errorf("resized = %d after hide, want 0", m.resized)
	}
	if got := m.Chat().Measurements().ContainerHeight; got != 17 {
		t.Errorf("ContainerHeight = %d, want 17", got)
	}
}

func TestModel_Status(t *testing.T) {
	m, _ := newTestModel(t, "")

	m.Update(relay.ClosedMsg{Err: errors.New("eof")})
	if m.Status() != "disconnected: eof" {
		t.Errorf("Status() = %q", m.Status())
	}
	seq := m.statusSeq

	m.Update(relay.SendFailedMsg{Err: errors.New("broken pipe")})
	// The first status timer is stale now.
	m.Update(clearStatusMsg{seq: seq})
	if m.Status() != "send failed: broken pipe" {
		t.Errorf("Status() = %q", m.Status())
	}
	m.Update(clearStatusMsg{seq: m.statusSeq})
	if m.Status() != "" {
		t.Errorf("Status() = %q after clear", m.Status())
	}
}

func TestModel_Quit(t *testing.T) {
	m, peer := newTestModel(t, "")
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
	if !peer.closed {
		t.Error("peer should be closed on quit")
	}
	if m.Chat().IsMounted() {
		t.Error("chat should be unmounted on quit")
	}
}

func TestEchoBot_Send(t *testing.T) {
	bot := &EchoBot{delay: time.Millisecond}
	if bot.Send(nil) != nil {
		t.Error("empty send should not schedule a reply")
	}

	cmd := bot.Send([]message.Message{{Text: "one"}, {Text: "two"}})
	msg, ok := cmd().(relay.FrameMsg)
	if !ok {
		t.Fatalf("reply is %T, want relay.FrameMsg", msg)
	}
	if msg.Frame.Type != relay.FrameMessage {
		t.Errorf("frame type = %q", msg.Frame.Type)
	}
	if len(msg.Frame.Messages) != 2 {
		t.Fatalf("got %d replies, want 2", len(msg.Frame.Messages))
	}
	if got := msg.Frame.Messages[1].Text; got != "You said: two" {
		t.Errorf("reply = %q", got)
	}
	if msg.Frame.Messages[0].User != EchoUser {
		t.Errorf("reply user = %+v, want echo bot", msg.Frame.Messages[0].User)
	}
}

func TestModel_EchoRoundTrip(t *testing.T) {
	bot := &EchoBot{delay: time.Millisecond}
	m := New(testConfig(t, ""), bot)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 21})

	typeInto(m, "marco")
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	frame := findFrame(cmd)
	if frame == nil {
		t.Fatal("send should schedule an echo reply")
	}
	m.Update(*frame)

	msgs := m.Chat().Messages()
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	// Inverted lists keep the newest first.
	if msgs[0].Text != "You said: marco" {
		t.Errorf("newest = %q", msgs[0].Text)
	}
}

// findFrame runs cmd, unpacking batches, and returns the first relay frame.
func findFrame(cmd tea.Cmd) *relay.FrameMsg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case relay.FrameMsg:
		return &msg
	case tea.BatchMsg:
		for _, c := range msg {
			if f := findFrame(c); f != nil {
				return f
			}
		}
	}
	return nil
}
