package ui

import (
	"time"

	"github.com/google/uuid"

	"github.com/zhubert/chatpane/internal/layout"
	"github.com/zhubert/chatpane/internal/message"
)

// Options configure a Chat. Start from DefaultOptions or TerminalOptions; the
// zero value has Inverted unset.
type Options struct {
	Messages []message.Message
	User     message.User

	// Text controls the composer when non-nil. Local edits are reported via
	// OnInputTextChanged but the displayed text always follows Text.
	Text        *string
	InitialText string
	Placeholder string

	Locale     string
	TimeFormat string // Go layout, DefaultTimeFormat when empty
	DateFormat string // Go layout, DefaultDateFormat when empty

	Animated         bool
	LoadEarlier      bool
	IsLoadingEarlier bool

	ShowUserAvatar            bool
	ShowAvatarForEveryMessage bool
	RenderAvatarOnTop         bool

	// Inverted stores the newest message first.
	Inverted bool

	// Pass-through bags handed to the matching delegates untouched.
	ImageProps     map[string]any
	TextInputProps map[string]any
	// ListViewProps configures the message list viewport:
	// "mouseWheelEnabled" (bool) and "mouseWheelDelta" (int).
	ListViewProps map[string]any

	BottomOffset          int
	MinInputToolbarHeight int
	MinComposerHeight     int
	MaxComposerHeight     int
	// MaxInputLength limits the composer in grapheme clusters. 0 is unlimited.
	MaxInputLength      int
	ForceKeyboardHeight bool
	AlwaysShowSend      bool
	ExtraData           any

	Platform         layout.Platform
	HasHomeIndicator bool
	SafeAreaInset    int

	MessageIDGenerator func(message.Message) string
	Now                func() time.Time

	// ActionSheet replaces the built-in sheet when set.
	ActionSheet ActionSheet

	Renderers Renderers

	OnSend              func([]message.Message)
	OnLoadEarlier       func()
	OnInputTextChanged  func(string)
	OnPressAvatar       func(message.User)
	OnLongPressAvatar   func(message.User)
	OnPressActionButton func()
	OnQuickReply        func([]message.Reply)
	OnLongPress         func(ActionSheet, message.Message)
}

// DefaultOptions returns options with point-based dimensions.
func DefaultOptions() Options {
	return Options{
		Inverted:              true,
		MinInputToolbarHeight: layout.DefaultMinInputToolbarHeight,
		MinComposerHeight:     layout.DefaultMinComposerHeight,
		MaxComposerHeight:     layout.DefaultMaxComposerHeight,
		Placeholder:           "Type a message...",
		TimeFormat:            DefaultTimeFormat,
		DateFormat:            DefaultDateFormat,
	}
}

// TerminalOptions returns options sized in terminal rows.
func TerminalOptions() Options {
	o := DefaultOptions()
	o.MinInputToolbarHeight = TerminalMinInputToolbarHeight
	o.MinComposerHeight = TerminalMinComposerHeight
	o.MaxComposerHeight = TerminalMaxComposerHeight
	return o
}

// params projects the layout-relevant options onto engine parameters.
func (o Options) params() layout.Params {
	return layout.Params{
		MinInputToolbarHeight: o.MinInputToolbarHeight,
		MinComposerHeight:     o.MinComposerHeight,
		MaxComposerHeight:     o.MaxComposerHeight,
		HasAccessory:          o.Renderers.Accessory != nil,
		Platform:              o.Platform,
		ForceKeyboardHeight:   o.ForceKeyboardHeight,
		HasHomeIndicator:      o.HasHomeIndicator,
		SafeAreaInset:         o.SafeAreaInset,
		BottomOffset:          o.BottomOffset,
		Animated:              o.Animated,
	}
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) newID(m message.Message) string {
	if o.MessageIDGenerator != nil {
		return o.MessageIDGenerator(m)
	}
	return uuid.NewString()
}

func (o Options) timeFormat() string {
	if o.TimeFormat == "" {
		return DefaultTimeFormat
	}
	return o.TimeFormat
}

func (o Options) dateFormat() string {
	if o.DateFormat == "" {
		return DefaultDateFormat
	}
	return o.DateFormat
}
