package layout

// composerSizeChanged clamps the proposed height and commits it together with
// the matching list height.
func composerSizeChanged(p Params, m Measurements, height int) (Measurements, *Commit) {
	m.ComposerHeight = ClampComposer(p, height)
	return commitTarget(p, m, KeyboardAdjustedHeight(p, m, m.ComposerHeight), false)
}

// composerReset returns the composer to its minimum height after a send and
// locks typing until TypingEnabled arrives.
func composerReset(p Params, m Measurements) (Measurements, *Commit) {
	m.IsTypingDisabled = true
	m.ComposerHeight = p.MinComposerHeight
	return commitTarget(p, m, KeyboardAdjustedHeight(p, m, m.ComposerHeight), false)
}
