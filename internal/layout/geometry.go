package layout

// Heights holds the three derived heights computed from one Measurements
// record.
type Heights struct {
	InputToolbar int
	Basic        int
	WithKeyboard int
}

// MinToolbarHeight returns the minimum input toolbar height, doubled when an
// accessory row is configured.
func MinToolbarHeight(p Params) int {
	if p.HasAccessory {
		return p.MinInputToolbarHeight * 2
	}
	return p.MinInputToolbarHeight
}

// InputToolbarHeight returns the toolbar height for a composer of the given
// height.
func InputToolbarHeight(p Params, composer int) int {
	return composer + (MinToolbarHeight(p) - p.MinComposerHeight)
}

// EffectiveKeyboardHeight is the keyboard height that eats into the list.
// Android resizes the window itself, so the keyboard is ignored there unless
// ForceKeyboardHeight is set.
func EffectiveKeyboardHeight(p Params, m Measurements) int {
	if p.Platform == PlatformAndroid && !p.ForceKeyboardHeight {
		return 0
	}
	return m.KeyboardHeight
}

func basicRaw(p Params, m Measurements, composer int) int {
	return m.MaxHeight - InputToolbarHeight(p, composer)
}

func withKeyboardRaw(p Params, m Measurements, composer int) int {
	return basicRaw(p, m, composer) - EffectiveKeyboardHeight(p, m) + m.BottomOffset
}

// BasicHeight is the list height ignoring the keyboard.
func BasicHeight(p Params, m Measurements, composer int) int {
	return nonNegative(basicRaw(p, m, composer))
}

// KeyboardAdjustedHeight is the list height with the keyboard and bottom
// offset taken into account.
func KeyboardAdjustedHeight(p Params, m Measurements, composer int) int {
	return nonNegative(withKeyboardRaw(p, m, composer))
}

// Derive computes all derived heights for the record's composer height in
// one pass.
func Derive(p Params, m Measurements) Heights {
	return Heights{
		InputToolbar: InputToolbarHeight(p, m.ComposerHeight),
		Basic:        BasicHeight(p, m, m.ComposerHeight),
		WithKeyboard: KeyboardAdjustedHeight(p, m, m.ComposerHeight),
	}
}

// ClampComposer bounds a requested composer height to the configured range.
func ClampComposer(p Params, height int) int {
	return max(p.MinComposerHeight, min(p.MaxComposerHeight, height))
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
