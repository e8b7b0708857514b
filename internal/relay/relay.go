// Package relay connects the chat to a websocket peer. Messages travel as
// JSON frames; a read pump delivers incoming frames over a channel that the
// Bubble Tea program drains with Listen.
package relay

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/gorilla/websocket"

	"github.com/zhubert/chatpane/internal/errors"
	"github.com/zhubert/chatpane/internal/logger"
	"github.com/zhubert/chatpane/internal/message"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second // must be less than pongWait
	maxMessageSize = 64 * 1024
	incomingBuffer = 64
)

// Frame types
const (
	FrameMessage = "message"
	FrameTyping  = "typing"
)

// Frame is one websocket payload.
type Frame struct {
	Type     string            `json:"type"`
	Messages []message.Message `json:"messages,omitempty"`
	User     *message.User     `json:"user,omitempty"`
}

// FrameMsg carries an incoming frame into the program.
type FrameMsg struct {
	Frame Frame
}

// ClosedMsg reports that the connection ended. Err is nil on a clean close.
type ClosedMsg struct {
	Err error
}

// SendFailedMsg reports a failed send. The connection may still be usable.
type SendFailedMsg struct {
	Err error
}

// Client is a connected relay peer.
type Client struct {
	conn     *websocket.Conn
	url      string
	incoming chan Frame
	done     chan struct{}

	writeMu   sync.Mutex
	closeOnce sync.Once
	errMu     sync.Mutex
	err       error

	log *slog.Logger
}

// Dial connects to url and starts the read and ping pumps. ctx bounds the
// handshake only.
func Dial(ctx context.Context, url string) (*Client, error) {
	dialer := websocket.Dialer{HandshakeTimeout: writeWait}
	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.RelayTimeout(url)
		}
		return nil, errors.RelayDialFailed(url, err)
	}

	c := &Client{
		conn:     conn,
		url:      url,
		incoming: make(chan Frame, incomingBuffer),
		done:     make(chan struct{}),
		log:      logger.WithComponent("relay"),
	}
	go c.readPump()
	go c.pingPump()
	c.log.Info("relay connected", "url", url)
	return c, nil
}

// URL returns the peer address.
func (c *Client) URL() string {
	return c.url
}

// Incoming returns the channel of received frames. It is closed when the
// connection ends.
func (c *Client) Incoming() <-chan Frame {
	return c.incoming
}

// Err returns the error that ended the connection, if any.
func (c *Client) Err() error {
	c.errMu.Lock()
	defer c.errMu.Unlock()
	return c.err
}

func (c *Client) readPump() {
	defer func() {
		close(c.incoming)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.fail(err)
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("relay read failed", "error", err)
				c.fail(err)
			}
			return
		}

		var f Frame
		if err := json.Unmarshal(data, &f); err != nil {
			c.log.Warn("invalid frame", "error", err)
			continue
		}
		select {
		case c.incoming <- f:
		case <-c.done:
			return
		}
	}
}

func (c *Client) pingPump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				c.log.Debug("ping failed", "error", err)
				return
			}
		case <-c.done:
			return
		}
	}
}

func (c *Client) fail(err error) {
	c.errMu.Lock()
	defer c.errMu.Unlock()
	if c.err == nil {
		c.err = err
	}
}

func (c *Client) write(kind int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(kind, data)
}

// SendFrame writes one frame.
func (c *Client) SendFrame(f Frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return errors.RelaySendFailed(err)
	}
	if err := c.write(websocket.TextMessage, data); err != nil {
		return errors.RelaySendFailed(err)
	}
	return nil
}

// Send forwards messages to the peer.
func (c *Client) Send(msgs []message.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	return c.SendFrame(Frame{Type: FrameMessage, Messages: msgs})
}

// Close sends a close frame and shuts the connection. Safe to call more than
// once.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		err = c.conn.Close()
		c.log.Info("relay closed", "url", c.url)
	})
	return err
}

// Listen returns a command that waits for the next frame.
func (c *Client) Listen() tea.Cmd {
	return func() tea.Msg {
		f, ok := <-c.incoming
		if !ok {
			return ClosedMsg{Err: c.Err()}
		}
		return FrameMsg{Frame: f}
	}
}

// SendCmd sends messages off the update loop and reports failures as
// SendFailedMsg.
func (c *Client) SendCmd(msgs []message.Message) tea.Cmd {
	return func() tea.Msg {
		if err := c.Send(msgs); err != nil {
			c.log.Warn("relay send failed", "error", err)
			return SendFailedMsg{Err: err}
		}
		return nil
	}
}
