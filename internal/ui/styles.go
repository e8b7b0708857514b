package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, replaced wholesale by SetTheme.
var (
	ColorPrimary     color.Color = lipgloss.Color("#7C3AED")
	ColorSecondary   color.Color = lipgloss.Color("#06B6D4")
	ColorText        color.Color = lipgloss.Color("#F9FAFB")
	ColorTextMuted   color.Color = lipgloss.Color("#9CA3AF")
	ColorTextInverse color.Color = lipgloss.Color("#F9FAFB")
	ColorBubbleLeft  color.Color = lipgloss.Color("#374151")
	ColorBubbleRight color.Color = lipgloss.Color("#6D28D9")
	ColorSystem      color.Color = lipgloss.Color("#9CA3AF")
	ColorError       color.Color = lipgloss.Color("#EF4444")
	ColorBorder      color.Color = lipgloss.Color("#374151")
	ColorBorderFocus color.Color = lipgloss.Color("#7C3AED")
)

// Message list styles
var (
	BubbleLeftStyle    lipgloss.Style
	BubbleRightStyle   lipgloss.Style
	SystemMessageStyle lipgloss.Style
	DayStyle           lipgloss.Style
	TimeStyle          lipgloss.Style
	AvatarStyle        lipgloss.Style
	LoadEarlierStyle   lipgloss.Style
	LoadingStyle       lipgloss.Style
	QuickReplyStyle    lipgloss.Style
	QuickReplyOnStyle  lipgloss.Style
	PendingStyle       lipgloss.Style
)

// Input toolbar styles
var (
	ComposerStyle        lipgloss.Style
	ComposerFocusedStyle lipgloss.Style
	SendStyle            lipgloss.Style
	SendDisabledStyle    lipgloss.Style
	ActionsStyle         lipgloss.Style
)

// Action sheet styles
var (
	SheetStyle      lipgloss.Style
	SheetTitleStyle lipgloss.Style
)

// Simulated keyboard and host styles
var (
	KeyboardStyle    lipgloss.Style
	KeyboardKeyStyle lipgloss.Style
	HeaderStyle      lipgloss.Style
)

// Markdown styles
var (
	MarkdownBoldStyle       lipgloss.Style
	MarkdownItalicStyle     lipgloss.Style
	MarkdownInlineCodeStyle lipgloss.Style
	MarkdownLinkStyle       lipgloss.Style
)

func init() {
	buildStyles()
}

func buildStyles() {
	BubbleLeftStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBubbleLeft).
		Padding(0, 1)

	BubbleRightStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorBubbleRight).
		Padding(0, 1)

	SystemMessageStyle = lipgloss.NewStyle().
		Foreground(ColorSystem).
		Italic(true)

	DayStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Bold(true)

	TimeStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	AvatarStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorSecondary).
		Bold(true)

	LoadEarlierStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Underline(true)

	LoadingStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	QuickReplyStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1)

	QuickReplyOnStyle = QuickReplyStyle.
		Foreground(ColorTextInverse).
		Background(ColorPrimary)

	PendingStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ComposerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	ComposerFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	SendStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	SendDisabledStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	ActionsStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		Padding(0, 1)

	SheetStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1)

	SheetTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	KeyboardStyle = lipgloss.NewStyle().
		Background(ColorBubbleLeft)

	KeyboardKeyStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBubbleLeft)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary)

	MarkdownBoldStyle = lipgloss.NewStyle().
		Bold(true)

	MarkdownItalicStyle = lipgloss.NewStyle().
		Italic(true)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(currentTheme.MarkdownCode))

	MarkdownLinkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(currentTheme.MarkdownLink)).
		Underline(true)
}
