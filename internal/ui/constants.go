package ui

import "time"

// Terminal row defaults. The composer counts its border, so the smallest
// composer is one line of text plus two border rows.
const (
	// TerminalMinInputToolbarHeight is the smallest input toolbar, in rows.
	TerminalMinInputToolbarHeight = 3

	// TerminalMinComposerHeight is one text line plus the composer border.
	TerminalMinComposerHeight = 3

	// TerminalMaxComposerHeight is six text lines plus the composer border.
	TerminalMaxComposerHeight = 8

	// ComposerBorderHeight is the vertical border size around the textarea.
	ComposerBorderHeight = 2

	// DefaultWrapWidth is the default width for text wrapping when the widget
	// width is unknown
	DefaultWrapWidth = 80

	// AvatarWidth is the width of the default avatar cell including its gap.
	AvatarWidth = 4

	// MaxBubbleWidthRatio caps bubbles to this share of the list width, in
	// percent.
	MaxBubbleWidthRatio = 75
)

// Default formats for the Time and Day delegates.
const (
	DefaultTimeFormat = "3:04 PM"
	DefaultDateFormat = "Jan 2, 2006"
)

// AnimationFrameInterval is the tick rate of the list height tween.
const AnimationFrameInterval = 16 * time.Millisecond

// SheetWidth is the width of the default action sheet.
const SheetWidth = 32
