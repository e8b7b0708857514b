package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatpane/internal/layout"
	"github.com/zhubert/chatpane/internal/message"
)

// typingReenable releases the typing lock after the reset delay.
func typingReenable() tea.Cmd {
	return tea.Tick(layout.TypingReenableDelay, func(time.Time) tea.Msg {
		return TypingEnabledMsg{}
	})
}

// Send stamps msgs with the current user, time and a fresh ID, appends them
// to the list and reports them through OnSend. With reset the composer is
// cleared and typing stays locked until the returned timer fires.
func (c *Chat) Send(reset bool, msgs ...message.Message) tea.Cmd {
	if len(msgs) == 0 {
		return nil
	}

	batch := make([]message.Message, len(msgs))
	for i, m := range msgs {
		m.User = c.opts.User
		m.CreatedAt = c.opts.now()
		m.ID = c.opts.newID(m)
		batch[i] = m
	}

	var cmds []tea.Cmd
	if reset {
		cmds = append(cmds, c.resetComposer(), typingReenable())
	}

	c.store.Add(c.opts.Inverted, batch...)
	c.log.Info("messages sent", "count", len(batch), "reset", reset)
	if c.opts.OnSend != nil {
		c.opts.OnSend(batch)
	}
	c.refresh()
	c.viewport.GotoBottom()
	return tea.Batch(cmds...)
}

// resetComposer clears the composer and takes the typing lock.
func (c *Chat) resetComposer() tea.Cmd {
	commit := c.engine.Apply(layout.ComposerReset{})
	c.syncComposerHeight()
	c.input.Reset()
	c.notifyInputTextReset()
	c.text = ""
	if c.opts.Text != nil {
		c.input.SetValue(*c.opts.Text)
	}
	return c.applyCommit(commit)
}

// AddMessages appends messages from other participants without touching the
// composer. IDs are generated for messages that lack one.
func (c *Chat) AddMessages(msgs ...message.Message) {
	if len(msgs) == 0 {
		return
	}
	batch := make([]message.Message, len(msgs))
	for i, m := range msgs {
		if m.ID == "" {
			m.ID = c.opts.newID(m)
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = c.opts.now()
		}
		batch[i] = m
	}
	c.store.Add(c.opts.Inverted, batch...)
	c.refresh()
}
