package ui

import "charm.land/lipgloss/v2"

// Theme is the color palette used by the default delegates.
type Theme struct {
	// Name is the display name of the theme
	Name string

	Primary   string // focus, send button
	Secondary string // avatars, load-earlier

	Text        string
	TextMuted   string // time, day separators, placeholders
	TextInverse string // text on bubble backgrounds

	BubbleLeft  string // messages from other users
	BubbleRight string // messages from the local user
	System      string
	Error       string

	Border      string
	BorderFocus string // defaults to Primary if empty

	MarkdownCode string
	MarkdownLink string

	// CodeStyle is the chroma style used for fenced code blocks.
	CodeStyle string
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

const (
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkPurple

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:         "Dark Purple",
		Primary:      "#7C3AED",
		Secondary:    "#06B6D4",
		Text:         "#F9FAFB",
		TextMuted:    "#9CA3AF",
		TextInverse:  "#F9FAFB",
		BubbleLeft:   "#374151",
		BubbleRight:  "#6D28D9",
		System:       "#9CA3AF",
		Error:        "#EF4444",
		Border:       "#374151",
		MarkdownCode: "#67E8F9",
		MarkdownLink: "#67E8F9",
		CodeStyle:    "monokai",
	},
	ThemeNord: {
		Name:         "Nord",
		Primary:      "#88C0D0",
		Secondary:    "#81A1C1",
		Text:         "#ECEFF4",
		TextMuted:    "#D8DEE9",
		TextInverse:  "#2E3440",
		BubbleLeft:   "#4C566A",
		BubbleRight:  "#88C0D0",
		System:       "#D8DEE9",
		Error:        "#BF616A",
		Border:       "#4C566A",
		MarkdownCode: "#A3BE8C",
		MarkdownLink: "#88C0D0",
		CodeStyle:    "nord",
	},
	ThemeDracula: {
		Name:         "Dracula",
		Primary:      "#BD93F9",
		Secondary:    "#8BE9FD",
		Text:         "#F8F8F2",
		TextMuted:    "#6272A4",
		TextInverse:  "#282A36",
		BubbleLeft:   "#44475A",
		BubbleRight:  "#BD93F9",
		System:       "#6272A4",
		Error:        "#FF5555",
		Border:       "#44475A",
		MarkdownCode: "#50FA7B",
		MarkdownLink: "#8BE9FD",
		CodeStyle:    "dracula",
	},
	ThemeLight: {
		Name:         "Light",
		Primary:      "#6366F1",
		Secondary:    "#0891B2",
		Text:         "#1F2937",
		TextMuted:    "#6B7280",
		TextInverse:  "#FFFFFF",
		BubbleLeft:   "#E5E7EB",
		BubbleRight:  "#6366F1",
		System:       "#6B7280",
		Error:        "#DC2626",
		Border:       "#D1D5DB",
		BorderFocus:  "#6366F1",
		MarkdownCode: "#059669",
		MarkdownLink: "#0891B2",
		CodeStyle:    "github",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeDarkPurple,
		ThemeNord,
		ThemeDracula,
		ThemeLight,
	}
}

// GetTheme returns a theme by name, defaulting to DarkPurple if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// IsTheme reports whether name is a built-in theme.
func IsTheme(name string) bool {
	_, ok := BuiltinThemes[ThemeName(name)]
	return ok
}

var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorBubbleLeft = lipgloss.Color(t.BubbleLeft)
	ColorBubbleRight = lipgloss.Color(t.BubbleRight)
	ColorSystem = lipgloss.Color(t.System)
	ColorError = lipgloss.Color(t.Error)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())

	buildStyles()
}
