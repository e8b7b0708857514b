package message

// Append adds incoming messages on the "newest" side of current.
//
// When inverted the newest message lives at the head of the slice, so the
// result is incoming ++ current; otherwise it is current ++ incoming. A single
// message is passed as Append(current, inverted, m) and behaves exactly like a
// one-element sequence. The result never shares a backing array with either
// input.
func Append[T any](current []T, inverted bool, incoming ...T) []T {
	if inverted {
		return concat(incoming, current)
	}
	return concat(current, incoming)
}

// Prepend adds incoming messages on the "oldest" side of current. It mirrors
// Append: current ++ incoming when inverted, incoming ++ current otherwise.
// Use it when loading earlier history.
func Prepend[T any](current []T, inverted bool, incoming ...T) []T {
	if inverted {
		return concat(current, incoming)
	}
	return concat(incoming, current)
}

func concat[T any](head, tail []T) []T {
	out := make([]T, 0, len(head)+len(tail))
	out = append(out, head...)
	return append(out, tail...)
}
