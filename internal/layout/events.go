package layout

// Frame is the keyboard rectangle reported by the platform.
type Frame struct {
	X, Y, Width, Height int
}

// KeyboardEvent is the payload of a keyboard notification. Platforms disagree
// on where the final frame lives, so both shapes are accepted.
type KeyboardEvent struct {
	EndCoordinates *Frame
	End            *Frame
}

// Height returns the keyboard height, preferring EndCoordinates.
func (e KeyboardEvent) Height() int {
	if e.EndCoordinates != nil {
		return e.EndCoordinates.Height
	}
	if e.End != nil {
		return e.End.Height
	}
	return 0
}

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// InitialLayout is the first measurement of the uninitialized container.
type InitialLayout struct{ Height int }

// MainLayout is a measurement of the initialized main view.
type MainLayout struct{ Height int }

// KeyboardWillShow fires before the keyboard slides in.
type KeyboardWillShow struct{ Event KeyboardEvent }

// KeyboardWillHide fires before the keyboard slides out.
type KeyboardWillHide struct{ Event KeyboardEvent }

// KeyboardDidShow fires once the keyboard is fully visible.
type KeyboardDidShow struct{ Event KeyboardEvent }

// KeyboardDidHide fires once the keyboard is fully hidden.
type KeyboardDidHide struct{ Event KeyboardEvent }

// ComposerSizeChanged carries the composer's proposed content height.
type ComposerSizeChanged struct{ Height int }

// ComposerReset shrinks the composer back to its minimum after a send and
// takes the typing lock.
type ComposerReset struct{}

// TypingEnabled releases the typing lock.
type TypingEnabled struct{}

// Unmount disposes the instance. Every later event is ignored.
type Unmount struct{}

func (InitialLayout) isEvent()       {}
func (MainLayout) isEvent()          {}
func (KeyboardWillShow) isEvent()    {}
func (KeyboardWillHide) isEvent()    {}
func (KeyboardDidShow) isEvent()     {}
func (KeyboardDidHide) isEvent()     {}
func (ComposerSizeChanged) isEvent() {}
func (ComposerReset) isEvent()       {}
func (TypingEnabled) isEvent()       {}
func (Unmount) isEvent()             {}
