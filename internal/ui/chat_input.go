package ui

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/zhubert/chatpane/internal/clipboard"
	"github.com/zhubert/chatpane/internal/keys"
	"github.com/zhubert/chatpane/internal/layout"
	"github.com/zhubert/chatpane/internal/message"
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteText

func (c *Chat) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case keys.Enter:
		return c.pressSend()
	case keys.ShiftEnter, keys.AltEnter:
		return c.editText(func() tea.Cmd {
			c.input.InsertString("\n")
			return nil
		})
	case keys.CtrlL:
		c.LoadEarlierMessages()
		return nil
	case keys.CtrlO:
		c.PressActionButton()
		return nil
	case keys.CtrlY:
		if m := c.store.Newest(c.opts.Inverted); m != nil {
			return c.LongPressMessage(m.ID)
		}
		return nil
	case keys.CtrlA:
		if m := c.store.Newest(c.opts.Inverted); m != nil {
			c.PressAvatar(m.ID)
		}
		return nil
	case keys.PgUp, keys.PgDown, keys.CtrlU, keys.CtrlD:
		var cmd tea.Cmd
		c.viewport, cmd = c.viewport.Update(msg)
		return cmd
	}

	if n, ok := quickReplyKey(key); ok {
		if n == 0 {
			c.ConfirmQuickReplies()
		} else {
			c.SelectQuickReply(n - 1)
		}
		return nil
	}

	return c.editText(func() tea.Cmd {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return cmd
	})
}

// quickReplyKey maps alt+0 through alt+9 to their digit.
func quickReplyKey(key string) (int, bool) {
	digit, ok := strings.CutPrefix(key, "alt+")
	if !ok || len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
		return 0, false
	}
	return int(digit[0] - '0'), true
}

// editText applies one composer edit. Edits are dropped while typing is
// disabled and reverted when they exceed MaxInputLength.
func (c *Chat) editText(apply func() tea.Cmd) tea.Cmd {
	if c.engine.IsTypingDisabled() {
		c.log.Debug("input dropped, typing disabled")
		return nil
	}

	before := c.input.Value()
	cmd := apply()
	after := c.input.Value()

	if c.opts.MaxInputLength > 0 && uniseg.GraphemeClusterCount(after) > c.opts.MaxInputLength {
		c.input.SetValue(before)
		return cmd
	}
	if after != before {
		c.textChanged(after)
	}
	return tea.Batch(cmd, c.measureComposer())
}

// textChanged reports an edit. Controlled composers snap back to Text, which
// the callback may have updated through SetText.
func (c *Chat) textChanged(text string) {
	if c.opts.OnInputTextChanged != nil {
		c.opts.OnInputTextChanged(text)
	}
	if c.opts.Text != nil {
		if text != *c.opts.Text {
			c.input.SetValue(*c.opts.Text)
		}
		return
	}
	c.text = text
}

func (c *Chat) notifyInputTextReset() {
	if c.opts.OnInputTextChanged != nil {
		c.opts.OnInputTextChanged("")
	}
}

// measureComposer proposes the composer height needed for the current text.
func (c *Chat) measureComposer() tea.Cmd {
	if !c.engine.IsInitialized() {
		return nil
	}
	p := c.engine.Params()
	want := layout.ClampComposer(p, visualLines(c.input.Value(), c.input.Width())+ComposerBorderHeight)
	if want == c.engine.Measurements().ComposerHeight {
		return nil
	}
	commit := c.engine.Apply(layout.ComposerSizeChanged{Height: want})
	c.syncComposerHeight()
	return c.applyCommit(commit)
}

// visualLines counts the rows text occupies when soft wrapped at width.
func visualLines(text string, width int) int {
	if width <= 0 {
		width = DefaultWrapWidth
	}
	rows := 0
	for _, line := range strings.Split(text, "\n") {
		rows += runewidth.StringWidth(line)/width + 1
	}
	return rows
}

// syncComposerHeight sizes the textarea to the committed composer height.
func (c *Chat) syncComposerHeight() {
	c.input.SetHeight(max(1, c.engine.Measurements().ComposerHeight-ComposerBorderHeight))
}

func (c *Chat) hasActions() bool {
	return c.opts.Renderers.Actions != nil || c.opts.OnPressActionButton != nil
}

// composerWidth is the textarea width left after the send and actions
// columns.
func (c *Chat) composerWidth() int {
	width := c.listWidth()
	sample := ToolbarProps{Text: " ", AlwaysShowSend: true, Labels: c.labels}
	width -= lipgloss.Width(c.rs.Send(sample))
	if c.hasActions() {
		width -= lipgloss.Width(c.rs.Actions(sample))
	}
	width -= ComposerStyle.GetHorizontalFrameSize()
	return max(1, width)
}

// pressSend sends the trimmed composer text. Enter is ignored while the
// typing lock from the previous send is held.
func (c *Chat) pressSend() tea.Cmd {
	if c.engine.IsTypingDisabled() {
		return nil
	}
	text := strings.TrimSpace(c.input.Value())
	if text == "" {
		return nil
	}
	return c.Send(true, message.Message{Text: text})
}

// LoadEarlierMessages asks the embedder for older messages. It does nothing
// while a load is in progress.
func (c *Chat) LoadEarlierMessages() {
	if !c.opts.LoadEarlier || c.opts.IsLoadingEarlier || c.opts.OnLoadEarlier == nil {
		return
	}
	c.log.Debug("load earlier requested")
	c.opts.OnLoadEarlier()
}

// PressActionButton triggers the toolbar actions button.
func (c *Chat) PressActionButton() {
	if c.opts.OnPressActionButton != nil {
		c.opts.OnPressActionButton()
	}
}

func (c *Chat) findMessage(id string) (message.Message, bool) {
	msgs := c.store.Messages()
	i := slices.IndexFunc(msgs, func(m message.Message) bool { return m.ID == id })
	if i < 0 {
		return message.Message{}, false
	}
	return msgs[i], true
}

// PressAvatar reports a press on the avatar of message id.
func (c *Chat) PressAvatar(id string) {
	if m, ok := c.findMessage(id); ok && c.opts.OnPressAvatar != nil {
		c.opts.OnPressAvatar(m.User)
	}
}

// LongPressAvatar reports a long press on the avatar of message id.
func (c *Chat) LongPressAvatar(id string) {
	if m, ok := c.findMessage(id); ok && c.opts.OnLongPressAvatar != nil {
		c.opts.OnLongPressAvatar(m.User)
	}
}

func (c *Chat) actionSheet() ActionSheet {
	if c.opts.ActionSheet != nil {
		return c.opts.ActionSheet
	}
	return c.sheet
}

// recordingSheet keeps the commands returned by a sheet opened from a
// callback so they still reach the runtime.
type recordingSheet struct {
	ActionSheet
	cmds []tea.Cmd
}

func (r *recordingSheet) ShowActionSheetWithOptions(opts ActionSheetOptions, onSelect func(int)) tea.Cmd {
	cmd := r.ActionSheet.ShowActionSheetWithOptions(opts, onSelect)
	r.cmds = append(r.cmds, cmd)
	return cmd
}

// LongPressMessage handles a long press on message id. Without an
// OnLongPress callback, text messages offer to copy their text.
func (c *Chat) LongPressMessage(id string) tea.Cmd {
	m, ok := c.findMessage(id)
	if !ok {
		return nil
	}
	sheet := &recordingSheet{ActionSheet: c.actionSheet()}
	if c.opts.OnLongPress != nil {
		c.opts.OnLongPress(sheet, m)
		return tea.Batch(sheet.cmds...)
	}
	if m.Text == "" {
		return nil
	}
	opts := ActionSheetOptions{
		Options:           []string{c.labels.CopyText, c.labels.Cancel},
		CancelButtonIndex: 1,
	}
	return sheet.ShowActionSheetWithOptions(opts, func(index int) {
		if index != 0 {
			return
		}
		if err := writeClipboard(m.Text); err != nil {
			c.log.Warn("copy failed", "error", err)
		}
	})
}

// quickReplyTarget returns the newest message whose quick replies are on
// screen.
func (c *Chat) quickReplyTarget() (message.Message, bool) {
	msgs := c.store.Messages()
	for i := range msgs {
		idx := len(msgs) - 1 - i
		if c.opts.Inverted {
			idx = i
		}
		_, next := c.neighbours(idx)
		if quickRepliesVisible(msgs[idx], next) {
			return msgs[idx], true
		}
	}
	return message.Message{}, false
}

func withMessageID(r message.Reply, id string) message.Reply {
	r.MessageID = id
	return r
}

// SelectQuickReply picks reply index i. Radio replies are reported at once;
// checkbox replies toggle and wait for ConfirmQuickReplies.
func (c *Chat) SelectQuickReply(i int) {
	m, ok := c.quickReplyTarget()
	if !ok || i < 0 || i >= len(m.QuickReplies.Values) {
		return
	}
	if m.QuickReplies.Type != "checkbox" {
		if c.opts.OnQuickReply != nil {
			c.opts.OnQuickReply([]message.Reply{withMessageID(m.QuickReplies.Values[i], m.ID)})
		}
		return
	}

	sel := c.selection[m.ID]
	if j := slices.Index(sel, i); j >= 0 {
		sel = slices.Delete(sel, j, j+1)
	} else {
		sel = append(sel, i)
	}
	c.selection[m.ID] = sel
	c.refresh()
}

// ConfirmQuickReplies reports the toggled checkbox replies. Nothing is
// reported when none are toggled.
func (c *Chat) ConfirmQuickReplies() {
	m, ok := c.quickReplyTarget()
	if !ok || len(c.selection[m.ID]) == 0 {
		return
	}
	sel := slices.Sorted(slices.Values(c.selection[m.ID]))
	replies := make([]message.Reply, 0, len(sel))
	for _, i := range sel {
		replies = append(replies, withMessageID(m.QuickReplies.Values[i], m.ID))
	}
	delete(c.selection, m.ID)
	c.refresh()
	if c.opts.OnQuickReply != nil {
		c.opts.OnQuickReply(replies)
	}
}
