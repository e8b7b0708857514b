package ui

import (
	"github.com/zhubert/chatpane/internal/locale"
	"github.com/zhubert/chatpane/internal/message"
)

// Position is the side of the list a message is drawn on.
type Position int

const (
	PositionLeft Position = iota
	PositionRight
)

// MessageProps is the bundle handed to every message-level delegate.
type MessageProps struct {
	Message message.Message
	// Previous is the older neighbour and Next the newer one, regardless of
	// collection order. Nil at the ends.
	Previous *message.Message
	Next     *message.Message
	Position Position
	User     message.User
	Inverted bool
	Width    int

	Locale     string
	Labels     locale.Labels
	TimeFormat string
	DateFormat string

	ShowUserAvatar            bool
	ShowAvatarForEveryMessage bool
	RenderAvatarOnTop         bool
	// QuickReplySelection holds the indices toggled on a checkbox reply set.
	QuickReplySelection []int

	ExtraData  any
	ImageProps map[string]any
}

// LoadEarlierProps is handed to the LoadEarlier delegate.
type LoadEarlierProps struct {
	IsLoadingEarlier bool
	Labels           locale.Labels
	Width            int
}

// ToolbarProps is handed to the input toolbar delegates. Composer holds the
// rendered composer so an InputToolbar replacement can reposition it.
type ToolbarProps struct {
	Text           string
	Placeholder    string
	Composer       string
	ComposerHeight int
	ToolbarHeight  int
	Width          int
	Focused        bool
	TypingDisabled bool
	AlwaysShowSend bool
	HasActions     bool
	Labels         locale.Labels
	TextInputProps map[string]any
}

// Renderers are the overridable render slots. A nil slot uses the default
// delegate; defaults compose through the resolved set, so replacing Bubble
// also changes what the default Message draws.
type Renderers struct {
	Loading       func() string
	LoadEarlier   func(LoadEarlierProps) string
	Avatar        func(MessageProps) string
	Bubble        func(MessageProps) string
	SystemMessage func(MessageProps) string
	Message       func(MessageProps) string
	MessageText   func(MessageProps) string
	MessageImage  func(MessageProps) string
	CustomView    func(MessageProps) string
	Day           func(MessageProps) string
	Time          func(MessageProps) string
	Footer        func(MessageProps) string
	QuickReplies  func(MessageProps) string
	ChatFooter    func() string
	InputToolbar  func(ToolbarProps) string
	Composer      func(ToolbarProps) string
	Actions       func(ToolbarProps) string
	Send          func(ToolbarProps) string
	// Accessory has no default. Setting it reserves a second toolbar row.
	Accessory func(ToolbarProps) string
}

// resolve fills every nil slot with its default delegate.
func (r Renderers) resolve() *Renderers {
	out := r
	rs := &out
	if rs.Loading == nil {
		rs.Loading = defaultLoading
	}
	if rs.LoadEarlier == nil {
		rs.LoadEarlier = defaultLoadEarlier
	}
	if rs.Avatar == nil {
		rs.Avatar = defaultAvatar
	}
	if rs.Bubble == nil {
		rs.Bubble = func(p MessageProps) string { return defaultBubble(rs, p) }
	}
	if rs.SystemMessage == nil {
		rs.SystemMessage = defaultSystemMessage
	}
	if rs.Message == nil {
		rs.Message = func(p MessageProps) string { return defaultMessage(rs, p) }
	}
	if rs.MessageText == nil {
		rs.MessageText = defaultMessageText
	}
	if rs.MessageImage == nil {
		rs.MessageImage = defaultMessageImage
	}
	if rs.CustomView == nil {
		rs.CustomView = func(MessageProps) string { return "" }
	}
	if rs.Day == nil {
		rs.Day = defaultDay
	}
	if rs.Time == nil {
		rs.Time = defaultTime
	}
	if rs.Footer == nil {
		rs.Footer = func(MessageProps) string { return "" }
	}
	if rs.QuickReplies == nil {
		rs.QuickReplies = defaultQuickReplies
	}
	if rs.ChatFooter == nil {
		rs.ChatFooter = func() string { return "" }
	}
	if rs.InputToolbar == nil {
		rs.InputToolbar = func(p ToolbarProps) string { return defaultInputToolbar(rs, p) }
	}
	if rs.Composer == nil {
		rs.Composer = func(p ToolbarProps) string { return p.Composer }
	}
	if rs.Actions == nil {
		rs.Actions = defaultActions
	}
	if rs.Send == nil {
		rs.Send = defaultSend
	}
	return rs
}
