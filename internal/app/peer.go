package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatpane/internal/message"
	"github.com/zhubert/chatpane/internal/relay"
)

// Peer is the other side of the conversation.
type Peer interface {
	// Name describes the peer for the status line.
	Name() string
	// Send delivers messages the local user sent.
	Send(msgs []message.Message) tea.Cmd
	// Listen waits for the next incoming frame. Nil when the peer only
	// answers sends.
	Listen() tea.Cmd
	Close() error
}

// EchoUser is the participant the echo bot speaks as.
var EchoUser = message.User{ID: "echo", Name: "Echo Bot"}

// EchoDelay is how long the echo bot takes to answer.
const EchoDelay = 600 * time.Millisecond

// EchoBot answers every message with a copy of its text.
type EchoBot struct {
	delay time.Duration
}

// NewEchoBot creates an echo bot answering after EchoDelay.
func NewEchoBot() *EchoBot {
	return &EchoBot{delay: EchoDelay}
}

func (b *EchoBot) Name() string { return "echo bot" }

func (b *EchoBot) Send(msgs []message.Message) tea.Cmd {
	if len(msgs) == 0 {
		return nil
	}
	replies := make([]message.Message, len(msgs))
	for i, m := range msgs {
		replies[i] = message.Message{
			Text: fmt.Sprintf("You said: %s", m.Text),
			User: EchoUser,
		}
	}
	frame := relay.Frame{Type: relay.FrameMessage, Messages: replies}
	return tea.Tick(b.delay, func(time.Time) tea.Msg {
		return relay.FrameMsg{Frame: frame}
	})
}

func (b *EchoBot) Listen() tea.Cmd { return nil }

func (b *EchoBot) Close() error { return nil }

// RelayPeer talks to a remote participant through a relay connection.
type RelayPeer struct {
	client *relay.Client
}

// NewRelayPeer wraps a connected relay client.
func NewRelayPeer(c *relay.Client) *RelayPeer {
	return &RelayPeer{client: c}
}

func (p *RelayPeer) Name() string { return p.client.URL() }

func (p *RelayPeer) Send(msgs []message.Message) tea.Cmd {
	return p.client.SendCmd(msgs)
}

func (p *RelayPeer) Listen() tea.Cmd {
	return p.client.Listen()
}

func (p *RelayPeer) Close() error {
	return p.client.Close()
}
