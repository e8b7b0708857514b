package layout

// SafeArea corrects a requested bottom offset for devices with a home
// indicator. When the request equals the stored offset (no explicit change),
// the fixed inset is used instead.
func SafeArea(p Params, m Measurements, requested int) int {
	if !p.HasHomeIndicator {
		return requested
	}
	if requested == m.BottomOffset {
		return p.SafeAreaInset
	}
	return requested
}

// commitTarget is the single place where a new list height is committed. The
// record holds the target immediately; Animated only affects how the widget
// draws the way there.
func commitTarget(p Params, m Measurements, height int, animate bool) (Measurements, *Commit) {
	m.ContainerHeight = height
	c := &Commit{Height: height}
	if animate && p.Animated {
		c.Animated = true
		c.Duration = KeyboardAnimationDuration
	}
	return m, c
}

func keyboardWillShow(p Params, m Measurements, ev KeyboardEvent) (Measurements, *Commit) {
	m.IsTypingDisabled = true
	m.KeyboardHeight = ev.Height()
	m.BottomOffset = SafeArea(p, m, p.BottomOffset)
	return commitTarget(p, m, KeyboardAdjustedHeight(p, m, m.ComposerHeight), true)
}

func keyboardWillHide(p Params, m Measurements) (Measurements, *Commit) {
	m.IsTypingDisabled = true
	m.KeyboardHeight = 0
	m.BottomOffset = 0
	return commitTarget(p, m, BasicHeight(p, m, m.ComposerHeight), true)
}

// keyboardDidShow re-runs will-show on Android, where did-show is the only
// event with reliable timing. Typing is re-enabled on every platform.
//
// The re-enable does not wait for an in-flight will-show tween; a slow
// animation can still be running when input resumes.
func keyboardDidShow(p Params, m Measurements, ev KeyboardEvent) (Measurements, *Commit) {
	var c *Commit
	if p.Platform == PlatformAndroid {
		m, c = keyboardWillShow(p, m, ev)
	}
	m.IsTypingDisabled = false
	return m, c
}

func keyboardDidHide(p Params, m Measurements) (Measurements, *Commit) {
	var c *Commit
	if p.Platform == PlatformAndroid {
		m, c = keyboardWillHide(p, m)
	}
	m.IsTypingDisabled = false
	return m, c
}
