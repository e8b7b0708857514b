package layout

import (
	"log/slog"

	"github.com/zhubert/chatpane/internal/logger"
)

// Reduce applies ev to m and returns the next record. The returned Commit is
// nil when the visible list height does not need to change.
//
// Events after Unmount leave the record untouched. Before the first layout,
// keyboard, reset and typing events still update the keyboard height, bottom
// offset and typing lock, but nothing is committed; the initial layout picks
// them up. Composer size changes wait for initialization.
func Reduce(p Params, m Measurements, ev Event) (Measurements, *Commit) {
	p = p.WithDefaults()
	if !m.IsMounted {
		return m, nil
	}

	switch e := ev.(type) {
	case Unmount:
		m.IsMounted = false
		return m, nil
	case InitialLayout:
		return initialLayout(p, m, e.Height)
	case MainLayout:
		return mainLayout(p, m, e.Height)
	}

	if !m.IsInitialized {
		return beforeInitialization(p, m, ev)
	}

	switch e := ev.(type) {
	case KeyboardWillShow:
		return keyboardWillShow(p, m, e.Event)
	case KeyboardWillHide:
		return keyboardWillHide(p, m)
	case KeyboardDidShow:
		return keyboardDidShow(p, m, e.Event)
	case KeyboardDidHide:
		return keyboardDidHide(p, m)
	case ComposerSizeChanged:
		return composerSizeChanged(p, m, e.Height)
	case ComposerReset:
		return composerReset(p, m)
	case TypingEnabled:
		m.IsTypingDisabled = false
		return m, nil
	}
	return m, nil
}

func beforeInitialization(p Params, m Measurements, ev Event) (Measurements, *Commit) {
	next := m
	switch e := ev.(type) {
	case KeyboardWillShow:
		next, _ = keyboardWillShow(p, m, e.Event)
	case KeyboardWillHide:
		next, _ = keyboardWillHide(p, m)
	case KeyboardDidShow:
		next, _ = keyboardDidShow(p, m, e.Event)
	case KeyboardDidHide:
		next, _ = keyboardDidHide(p, m)
	case ComposerReset:
		next, _ = composerReset(p, m)
	case TypingEnabled:
		next.IsTypingDisabled = false
	}
	// No list is on screen yet.
	next.ContainerHeight = m.ContainerHeight
	return next, nil
}

// Engine owns the Measurements of one widget and logs every transition.
type Engine struct {
	params Params
	m      Measurements
	log    *slog.Logger
}

// NewEngine creates a mounted engine for the given parameters.
func NewEngine(p Params) *Engine {
	p = p.WithDefaults()
	return &Engine{
		params: p,
		m:      NewMeasurements(p),
		log:    logger.WithComponent("layout"),
	}
}

// Apply feeds ev through Reduce and keeps the result.
func (e *Engine) Apply(ev Event) *Commit {
	before := e.m
	next, c := Reduce(e.params, e.m, ev)
	e.m = next

	if c != nil || before != next {
		e.log.Debug("layout transition",
			"event", eventName(ev),
			"maxHeight", next.MaxHeight,
			"keyboardHeight", next.KeyboardHeight,
			"bottomOffset", next.BottomOffset,
			"composerHeight", next.ComposerHeight,
			"containerHeight", next.ContainerHeight,
			"typingDisabled", next.IsTypingDisabled,
			"committed", c != nil,
		)
	}
	return c
}

// Measurements returns a copy of the current record.
func (e *Engine) Measurements() Measurements {
	return e.m
}

// Params returns the engine's configuration.
func (e *Engine) Params() Params {
	return e.params
}

// SetParams swaps the standing configuration, e.g. after the embedder changes
// the bottom offset or accessory row. The record is kept as is; the next event
// computes against the new values.
func (e *Engine) SetParams(p Params) {
	e.params = p.WithDefaults()
}

// Heights derives the current heights from the record.
func (e *Engine) Heights() Heights {
	return Derive(e.params, e.m)
}

// IsInitialized reports whether the first positive layout has arrived.
func (e *Engine) IsInitialized() bool { return e.m.IsInitialized }

// IsMounted reports whether the instance is still live.
func (e *Engine) IsMounted() bool { return e.m.IsMounted }

// IsTypingDisabled reports whether the typing lock is held.
func (e *Engine) IsTypingDisabled() bool { return e.m.IsTypingDisabled }

func eventName(ev Event) string {
	switch ev.(type) {
	case InitialLayout:
		return "initial-layout"
	case MainLayout:
		return "main-layout"
	case KeyboardWillShow:
		return "keyboard-will-show"
	case KeyboardWillHide:
		return "keyboard-will-hide"
	case KeyboardDidShow:
		return "keyboard-did-show"
	case KeyboardDidHide:
		return "keyboard-did-hide"
	case ComposerSizeChanged:
		return "composer-size-changed"
	case ComposerReset:
		return "composer-reset"
	case TypingEnabled:
		return "typing-enabled"
	case Unmount:
		return "unmount"
	default:
		return "unknown"
	}
}
