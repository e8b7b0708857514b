// Package layout implements the coordination engine that keeps the chat
// widget's message list, input toolbar and on-screen keyboard in agreement.
//
// # Measurements
//
// All mutable geometry lives in one Measurements record. Nothing outside this
// package writes it: platform events are turned into Event values and fed to
// Reduce, which returns the next record and, when the visible list height must
// change, a Commit describing how to apply it (immediately or as an animated
// tween). The chat widget renders a pure projection of the latest record.
//
// # Derived heights
//
//	inputToolbar = composer + (minInputToolbar - minComposer)
//	basic        = maxHeight - inputToolbar
//	withKeyboard = basic - keyboardHeight + bottomOffset
//
// The three are always recomputed together from the same record (see Derive);
// mixing a fresh value with a stale one shows up as a clipped frame.
//
// # Typing lock
//
// IsTypingDisabled is a cooperative lock: while it is set the widget drops
// composer input instead of processing it. Keyboard will-show/will-hide and the
// post-send reset take the lock; did-show/did-hide and the reset timer release
// it.
package layout

import (
	"fmt"
	"strings"
	"time"
)

// Platform selects the keyboard event semantics of the host.
type Platform int

const (
	// PlatformIOS delivers reliable will-show/will-hide events and overlays the
	// keyboard on top of the window.
	PlatformIOS Platform = iota
	// PlatformAndroid resizes the window for the keyboard and only delivers
	// did-show/did-hide with usable timing.
	PlatformAndroid
)

func (p Platform) String() string {
	switch p {
	case PlatformAndroid:
		return "android"
	default:
		return "ios"
	}
}

// ParsePlatform maps a platform name onto a Platform.
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ios":
		return PlatformIOS, nil
	case "android":
		return PlatformAndroid, nil
	default:
		return PlatformIOS, fmt.Errorf("unknown platform %q", name)
	}
}

// Timing constants
const (
	// KeyboardAnimationDuration is the length of the list height tween that
	// follows a keyboard will-show/will-hide.
	KeyboardAnimationDuration = 210 * time.Millisecond

	// TypingReenableDelay is how long input stays locked after a send resets
	// the composer.
	TypingReenableDelay = 100 * time.Millisecond
)

// Default dimensions, in points.
const (
	DefaultMinInputToolbarHeight = 44
	DefaultMinComposerHeight     = 33
	DefaultMaxComposerHeight     = 200

	// HomeIndicatorInset replaces the bottom offset on devices with a home
	// indicator when no explicit offset change was requested.
	HomeIndicatorInset = 33
)

// Params is the standing configuration the engine computes against. It is
// supplied by the embedder and never modified by the engine.
type Params struct {
	MinInputToolbarHeight int
	MinComposerHeight     int
	MaxComposerHeight     int

	// HasAccessory doubles the minimum toolbar height for the secondary row.
	HasAccessory bool

	Platform            Platform
	ForceKeyboardHeight bool // count keyboard height even on Android

	HasHomeIndicator bool
	SafeAreaInset    int // 0 means HomeIndicatorInset

	// BottomOffset is the requested distance of the chat from the bottom of the
	// screen (e.g. a tab bar).
	BottomOffset int

	// Animated selects tweened commits for keyboard transitions.
	Animated bool
}

// WithDefaults fills zero dimension fields with the package defaults.
func (p Params) WithDefaults() Params {
	if p.MinInputToolbarHeight <= 0 {
		p.MinInputToolbarHeight = DefaultMinInputToolbarHeight
	}
	if p.MinComposerHeight <= 0 {
		p.MinComposerHeight = DefaultMinComposerHeight
	}
	if p.MaxComposerHeight <= 0 {
		p.MaxComposerHeight = DefaultMaxComposerHeight
	}
	if p.MaxComposerHeight < p.MinComposerHeight {
		p.MaxComposerHeight = p.MinComposerHeight
	}
	if p.SafeAreaInset <= 0 {
		p.SafeAreaInset = HomeIndicatorInset
	}
	return p
}

// Measurements is the process-local geometry and lifecycle state of one
// widget instance.
type Measurements struct {
	MaxHeight      int // container height from the last measured layout
	KeyboardHeight int
	BottomOffset   int
	ComposerHeight int

	// ContainerHeight is the committed target height of the message list.
	ContainerHeight int

	IsInitialized    bool
	IsFirstLayout    bool
	IsMounted        bool
	IsTypingDisabled bool
}

// NewMeasurements returns the record of a freshly mounted widget.
func NewMeasurements(p Params) Measurements {
	p = p.WithDefaults()
	return Measurements{
		ComposerHeight: p.MinComposerHeight,
		IsFirstLayout:  true,
		IsMounted:      true,
	}
}

// Commit tells the widget how to apply a new message list height.
type Commit struct {
	Height   int
	Animated bool
	Duration time.Duration
}
