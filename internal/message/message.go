// Package message defines the chat message model and the ordering helpers
// used to combine message collections.
//
// A collection is an ordered slice of Message. Whether the newest message sits
// at the head or the tail of the slice is decided by the inverted flag, which is
// a standing option of the chat widget rather than a per-call choice. Append and
// Prepend take that flag into account so callers never reverse slices by hand.
package message

import "time"

// User identifies a chat participant.
type User struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Avatar string `json:"avatar,omitempty" yaml:"avatar,omitempty"` // URL, path or initials
}

// Reply is a single quick-reply choice attached to a message.
type Reply struct {
	Title     string `json:"title" yaml:"title"`
	Value     string `json:"value" yaml:"value"`
	MessageID string `json:"messageId,omitempty" yaml:"messageId,omitempty"`
}

// QuickReplies describes the reply choices offered under a message.
type QuickReplies struct {
	Type   string  `json:"type" yaml:"type"` // "radio" or "checkbox"
	Values []Reply `json:"values" yaml:"values"`
	KeepIt bool    `json:"keepIt,omitempty" yaml:"keepIt,omitempty"`
}

// Message is one entry of the conversation. Identity is ID; the generator that
// produced it is responsible for uniqueness.
type Message struct {
	ID        string    `json:"id" yaml:"id"`
	Text      string    `json:"text" yaml:"text"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	User      User      `json:"user" yaml:"user"`

	Image  string `json:"image,omitempty" yaml:"image,omitempty"`
	System bool   `json:"system,omitempty" yaml:"system,omitempty"`

	// Delivery ticks
	Sent     bool `json:"sent,omitempty" yaml:"sent,omitempty"`
	Received bool `json:"received,omitempty" yaml:"received,omitempty"`
	Pending  bool `json:"pending,omitempty" yaml:"pending,omitempty"`

	QuickReplies *QuickReplies `json:"quickReplies,omitempty" yaml:"quickReplies,omitempty"`
}

// IsSameUser reports whether both messages were written by the same user.
func IsSameUser(a, b *Message) bool {
	if a == nil || b == nil {
		return false
	}
	return a.User.ID == b.User.ID
}

// IsSameDay reports whether both messages were created on the same local
// calendar day.
func IsSameDay(a, b *Message) bool {
	if a == nil || b == nil {
		return false
	}
	if a.CreatedAt.IsZero() || b.CreatedAt.IsZero() {
		return false
	}
	ay, am, ad := a.CreatedAt.Local().Date()
	by, bm, bd := b.CreatedAt.Local().Date()
	return ay == by && am == bm && ad == bd
}
