package layout

// initialLayout records the first positive measurement and flips the widget
// to initialized. Later initial layouts are ignored; initialization is
// terminal for the life of the mount.
func initialLayout(p Params, m Measurements, height int) (Measurements, *Commit) {
	if height <= 0 || m.IsInitialized {
		return m, nil
	}
	m.MaxHeight = height
	m.ComposerHeight = p.MinComposerHeight
	m.IsInitialized = true
	return commitTarget(p, m, KeyboardAdjustedHeight(p, m, m.ComposerHeight), false)
}

// mainLayout handles measurements of the initialized main view. A changed
// height, or the first layout after initialization, recomputes the basic
// height.
func mainLayout(p Params, m Measurements, height int) (Measurements, *Commit) {
	if height <= 0 || !m.IsInitialized {
		return m, nil
	}
	var c *Commit
	if m.MaxHeight != height || m.IsFirstLayout {
		m.MaxHeight = height
		m, c = commitTarget(p, m, BasicHeight(p, m, m.ComposerHeight), false)
	}
	m.IsFirstLayout = false
	return m, c
}
