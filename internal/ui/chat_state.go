package ui

import (
	"time"

	"github.com/zhubert/chatpane/internal/layout"
)

// LayoutMsg reports the measured height of the widget's container.
type LayoutMsg struct {
	Height int
}

// KeyboardPhase identifies a keyboard notification.
type KeyboardPhase int

const (
	KeyboardWillShow KeyboardPhase = iota
	KeyboardDidShow
	KeyboardWillHide
	KeyboardDidHide
)

func (p KeyboardPhase) String() string {
	switch p {
	case KeyboardWillShow:
		return "will-show"
	case KeyboardDidShow:
		return "did-show"
	case KeyboardWillHide:
		return "will-hide"
	case KeyboardDidHide:
		return "did-hide"
	}
	return "unknown"
}

// KeyboardMsg is an on-screen keyboard notification from the host.
type KeyboardMsg struct {
	Phase KeyboardPhase
	Event layout.KeyboardEvent
}

// event converts the message into a layout event.
func (k KeyboardMsg) event() layout.Event {
	switch k.Phase {
	case KeyboardDidShow:
		return layout.KeyboardDidShow{Event: k.Event}
	case KeyboardWillHide:
		return layout.KeyboardWillHide{Event: k.Event}
	case KeyboardDidHide:
		return layout.KeyboardDidHide{Event: k.Event}
	default:
		return layout.KeyboardWillShow{Event: k.Event}
	}
}

// ComposerSizeMsg proposes a new composer height measured by the host.
type ComposerSizeMsg struct {
	Height int
}

// TypingEnabledMsg releases the typing lock taken by a send. It is produced
// by the timer Send returns.
type TypingEnabledMsg struct{}

// AnimationFrameMsg advances the list height tween with the given ID.
type AnimationFrameMsg struct {
	ID   int
	Time time.Time
}

// heightTween interpolates the drawn list height toward a committed target.
// The committed record already holds the target; only the drawn height moves.
type heightTween struct {
	id       int
	from, to int
	start    time.Time
	duration time.Duration
	active   bool
}

// at returns the interpolated height at t and whether the tween has finished.
func (tw heightTween) at(t time.Time) (int, bool) {
	elapsed := t.Sub(tw.start)
	if tw.duration <= 0 || elapsed >= tw.duration {
		return tw.to, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	delta := int(int64(tw.to-tw.from) * int64(elapsed) / int64(tw.duration))
	return tw.from + delta, false
}
