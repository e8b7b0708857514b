package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatpane/internal/layout"
)

// animationFrame returns a command that delivers the next tween frame.
func animationFrame(id int) tea.Cmd {
	return tea.Tick(AnimationFrameInterval, func(t time.Time) tea.Msg {
		return AnimationFrameMsg{ID: id, Time: t}
	})
}

// applyCommit applies a committed list height. Animated commits start a tween
// from the drawn height; immediate ones cancel any tween in flight.
func (c *Chat) applyCommit(commit *layout.Commit) tea.Cmd {
	if commit == nil {
		return nil
	}
	if commit.Animated && commit.Duration > 0 && c.displayed != commit.Height {
		c.tween = heightTween{
			id:       c.tween.id + 1,
			from:     c.displayed,
			to:       commit.Height,
			start:    c.opts.now(),
			duration: commit.Duration,
			active:   true,
		}
		c.log.Debug("tween started", "from", c.tween.from, "to", c.tween.to, "duration", commit.Duration)
		return animationFrame(c.tween.id)
	}
	c.tween.active = false
	c.setDisplayed(commit.Height)
	return nil
}

// handleAnimationFrame advances the tween. Frames of superseded tweens are
// dropped.
func (c *Chat) handleAnimationFrame(msg AnimationFrameMsg) tea.Cmd {
	if !c.tween.active || msg.ID != c.tween.id {
		return nil
	}
	h, done := c.tween.at(msg.Time)
	c.setDisplayed(h)
	if done {
		c.tween.active = false
		return nil
	}
	return animationFrame(c.tween.id)
}

// Animating reports whether a list height tween is running.
func (c *Chat) Animating() bool {
	return c.tween.active
}

// AnimationID returns the ID of the current or last tween.
func (c *Chat) AnimationID() int {
	return c.tween.id
}

// DisplayedHeight returns the list height currently drawn, which trails the
// committed height while a tween runs.
func (c *Chat) DisplayedHeight() int {
	return c.displayed
}
