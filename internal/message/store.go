package message

// Store holds the working message collection of one chat widget.
//
// The collection is replaced wholesale whenever the external source supplies a
// new slice. Replacement is identity checked: handing back the very same slice
// (same backing array and length) is not a change.
type Store struct {
	messages []Message
}

// NewStore creates a store seeded with msgs.
func NewStore(msgs []Message) *Store {
	s := &Store{}
	s.Set(msgs)
	return s
}

// Set replaces the collection and reports whether it differs by identity from
// the previous one.
func (s *Store) Set(msgs []Message) bool {
	if sameSlice(s.messages, msgs) {
		return false
	}
	s.messages = msgs
	return true
}

// Messages returns the current collection. Callers must not mutate it.
func (s *Store) Messages() []Message {
	return s.messages
}

// Len returns the number of messages in the collection.
func (s *Store) Len() int {
	return len(s.messages)
}

// Add combines incoming with the collection using Append semantics and makes
// the result the new collection.
func (s *Store) Add(inverted bool, incoming ...Message) {
	s.messages = Append(s.messages, inverted, incoming...)
}

// Newest returns the most recent message for the given ordering, or nil when
// the collection is empty.
func (s *Store) Newest(inverted bool) *Message {
	if len(s.messages) == 0 {
		return nil
	}
	if inverted {
		return &s.messages[0]
	}
	return &s.messages[len(s.messages)-1]
}

func sameSlice(a, b []Message) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}
