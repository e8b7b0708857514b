// Package ui provides the chat widget and its default delegates.
//
// # Overview
//
// Chat is a Bubble Tea component: a scrolling message list above an input
// toolbar. Its geometry lives in a layout.Engine; the widget feeds the engine
// container and keyboard measurements and draws whatever height it commits.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Load earlier (optional)                             │
//	│                                                     │
//	│ Message list, oldest at the top                     │
//	│                                                     │
//	│ Chat footer (optional)                              │
//	├─────────────────────────────────────────────────────┤
//	│ [Actions] Composer                           [Send] │
//	│ Accessory (optional)                                │
//	└─────────────────────────────────────────────────────┘
//	  keyboard (host owned, eats into the list)
//
// # Messages
//
// The host sends LayoutMsg when its container is measured, KeyboardMsg for
// keyboard notifications and ComposerSizeMsg for externally measured composer
// heights. TypingEnabledMsg and AnimationFrameMsg are produced by commands the
// widget returns and must be routed back to Update.
//
// # Renderers
//
// Every visible piece is drawn by a slot in Renderers. A nil slot falls back
// to the default delegate in delegates.go. Defaults are composed through the
// resolved set, so overriding Bubble changes what the default Message draws.
//
// # Styles
//
// Styles are defined in styles.go and rebuilt from the active Theme by
// SetTheme.
package ui
