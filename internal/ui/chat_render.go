package ui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/chatpane/internal/message"
)

func (c *Chat) listWidth() int {
	if c.width <= 0 {
		return DefaultWrapWidth
	}
	return c.width
}

// neighbours returns the older and newer neighbours of msgs[idx].
func (c *Chat) neighbours(idx int) (previous, next *message.Message) {
	msgs := c.store.Messages()
	older, newer := idx-1, idx+1
	if c.opts.Inverted {
		older, newer = idx+1, idx-1
	}
	if older >= 0 && older < len(msgs) {
		previous = &msgs[older]
	}
	if newer >= 0 && newer < len(msgs) {
		next = &msgs[newer]
	}
	return previous, next
}

func (c *Chat) messageProps(idx int) MessageProps {
	m := c.store.Messages()[idx]
	prev, next := c.neighbours(idx)
	pos := PositionLeft
	if m.User.ID == c.opts.User.ID {
		pos = PositionRight
	}
	return MessageProps{
		Message:                   m,
		Previous:                  prev,
		Next:                      next,
		Position:                  pos,
		User:                      c.opts.User,
		Inverted:                  c.opts.Inverted,
		Width:                     c.listWidth(),
		Locale:                    c.locale,
		Labels:                    c.labels,
		TimeFormat:                c.opts.timeFormat(),
		DateFormat:                c.opts.dateFormat(),
		ShowUserAvatar:            c.opts.ShowUserAvatar,
		ShowAvatarForEveryMessage: c.opts.ShowAvatarForEveryMessage,
		RenderAvatarOnTop:         c.opts.RenderAvatarOnTop,
		QuickReplySelection:       c.selection[m.ID],
		ExtraData:                 c.opts.ExtraData,
		ImageProps:                c.opts.ImageProps,
	}
}

// renderList draws the whole conversation, oldest message at the top
// whichever way the collection is stored.
func (c *Chat) renderList() string {
	var parts []string
	if c.opts.LoadEarlier {
		parts = append(parts, c.rs.LoadEarlier(LoadEarlierProps{
			IsLoadingEarlier: c.opts.IsLoadingEarlier,
			Labels:           c.labels,
			Width:            c.listWidth(),
		}))
	}

	n := c.store.Len()
	for i := range n {
		idx := i
		if c.opts.Inverted {
			idx = n - 1 - i
		}
		parts = append(parts, c.rs.Message(c.messageProps(idx)))
	}
	return strings.Join(parts, "\n")
}

// refresh re-renders the list, staying pinned to the bottom when it was.
func (c *Chat) refresh() {
	atBottom := c.viewport.AtBottom()
	c.viewport.SetContent(c.renderList())
	if atBottom {
		c.viewport.GotoBottom()
	}
}

func (c *Chat) chatFooterHeight() int {
	if footer := c.rs.ChatFooter(); footer != "" {
		return lipgloss.Height(footer)
	}
	return 0
}

// setDisplayed resizes the drawn list.
func (c *Chat) setDisplayed(h int) {
	c.displayed = h
	atBottom := c.viewport.AtBottom()
	c.viewport.SetHeight(max(0, h-c.chatFooterHeight()))
	if atBottom {
		c.viewport.GotoBottom()
	}
}

func (c *Chat) toolbarProps(toolbarHeight int) ToolbarProps {
	composer := ComposerStyle
	if c.focused {
		composer = ComposerFocusedStyle
	}
	return ToolbarProps{
		Text:           c.input.Value(),
		Placeholder:    c.opts.Placeholder,
		Composer:       composer.Render(c.input.View()),
		ComposerHeight: c.engine.Measurements().ComposerHeight,
		ToolbarHeight:  toolbarHeight,
		Width:          c.listWidth(),
		Focused:        c.focused,
		TypingDisabled: c.engine.IsTypingDisabled(),
		AlwaysShowSend: c.opts.AlwaysShowSend,
		HasActions:     c.hasActions(),
		Labels:         c.labels,
		TextInputProps: c.opts.TextInputProps,
	}
}

func (c *Chat) renderToolbar() string {
	h := c.engine.Heights().InputToolbar
	bar := c.rs.InputToolbar(c.toolbarProps(h))
	return lipgloss.NewStyle().Width(c.width).Height(h).MaxHeight(h).Render(bar)
}

// renderListArea draws the list at the drawn height, chat footer included.
func (c *Chat) renderListArea() string {
	if c.displayed <= 0 {
		return ""
	}
	list := c.viewport.View()
	if footer := c.rs.ChatFooter(); footer != "" {
		list = lipgloss.JoinVertical(lipgloss.Left, list, footer)
	}
	return lipgloss.NewStyle().Height(c.displayed).MaxHeight(c.displayed).Render(list)
}

// View renders the widget. Until the first layout only the loading delegate
// is drawn.
func (c *Chat) View() string {
	if !c.engine.IsInitialized() {
		return c.rs.Loading()
	}

	parts := []string{c.renderToolbar()}
	if list := c.renderListArea(); list != "" {
		parts = append([]string{list}, parts...)
	}
	out := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if c.opts.ActionSheet == nil && c.sheet.Visible() {
		out = c.sheet.Overlay(out, c.width, lipgloss.Height(out))
	}
	return out
}
