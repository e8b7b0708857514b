package ui

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/chatpane/internal/message"
)

func defaultLoading() string {
	return LoadingStyle.Render("Loading...")
}

func defaultLoadEarlier(p LoadEarlierProps) string {
	label := "↑ " + p.Labels.LoadEarlier
	if p.IsLoadingEarlier {
		label = p.Labels.Loading
	}
	return lipgloss.PlaceHorizontal(p.Width, lipgloss.Center, LoadEarlierStyle.Render(label))
}

// initials returns up to two upper-case initials of a display name.
func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		out = append(out, unicode.ToUpper(r))
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

func defaultAvatar(p MessageProps) string {
	badge := AvatarStyle.Render(fmt.Sprintf("%-2s", initials(p.Message.User.Name)))
	cell := lipgloss.NewStyle().Width(AvatarWidth)
	if p.Position == PositionRight {
		cell = cell.Align(lipgloss.Right)
	}
	return cell.Render(badge)
}

// showsAvatarColumn reports whether the message reserves an avatar column.
// The local user's messages only do with ShowUserAvatar.
func showsAvatarColumn(p MessageProps) bool {
	return p.Position == PositionLeft || p.ShowUserAvatar
}

// showsAvatar reports whether the avatar itself is drawn: once per run of
// messages from the same user on the same day, at the run's bottom, or its top
// with RenderAvatarOnTop.
func showsAvatar(p MessageProps) bool {
	if p.ShowAvatarForEveryMessage {
		return true
	}
	neighbour := p.Next
	if p.RenderAvatarOnTop {
		neighbour = p.Previous
	}
	return !message.IsSameUser(&p.Message, neighbour) || !message.IsSameDay(&p.Message, neighbour)
}

// bubbleWidth is the outer width available to a bubble.
func bubbleWidth(p MessageProps) int {
	w := p.Width * MaxBubbleWidthRatio / 100
	if showsAvatarColumn(p) {
		w -= AvatarWidth
	}
	return max(w, 8)
}

func defaultBubble(rs *Renderers, p MessageProps) string {
	style := BubbleLeftStyle
	if p.Position == PositionRight {
		style = BubbleRightStyle
	}

	inner := p
	inner.Width = bubbleWidth(p) - style.GetHorizontalFrameSize()

	var parts []string
	if v := rs.CustomView(inner); v != "" {
		parts = append(parts, v)
	}
	if p.Message.Image != "" {
		parts = append(parts, rs.MessageImage(inner))
	}
	if p.Message.Text != "" {
		parts = append(parts, rs.MessageText(inner))
	}

	meta := rs.Time(inner)
	if ticks := renderTicks(p); ticks != "" {
		meta = strings.TrimSpace(meta + " " + ticks)
	}
	if meta != "" {
		parts = append(parts, meta)
	}
	if f := rs.Footer(inner); f != "" {
		parts = append(parts, f)
	}

	bubble := style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if qr := rs.QuickReplies(inner); qr != "" {
		bubble = lipgloss.JoinVertical(lipgloss.Left, bubble, qr)
	}
	return bubble
}

// renderTicks renders delivery state for the local user's messages.
func renderTicks(p MessageProps) string {
	if p.Message.User.ID != p.User.ID {
		return ""
	}
	switch {
	case p.Message.Pending:
		return PendingStyle.Render("◷")
	case p.Message.Sent && p.Message.Received:
		return "✓✓"
	case p.Message.Sent || p.Message.Received:
		return "✓"
	}
	return ""
}

func defaultSystemMessage(p MessageProps) string {
	text := wrapText(p.Message.Text, max(p.Width-4, 1))
	return lipgloss.PlaceHorizontal(p.Width, lipgloss.Center, SystemMessageStyle.Render(text))
}

func defaultMessage(rs *Renderers, p MessageProps) string {
	var rows []string
	if day := rs.Day(p); day != "" {
		rows = append(rows, day)
	}

	if p.Message.System {
		rows = append(rows, rs.SystemMessage(p))
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	bubble := rs.Bubble(p)
	row := bubble
	if showsAvatarColumn(p) {
		avatar := lipgloss.NewStyle().Width(AvatarWidth).Render("")
		if showsAvatar(p) {
			avatar = rs.Avatar(p)
		}
		align := lipgloss.Bottom
		if p.RenderAvatarOnTop {
			align = lipgloss.Top
		}
		if p.Position == PositionRight {
			row = lipgloss.JoinHorizontal(align, bubble, avatar)
		} else {
			row = lipgloss.JoinHorizontal(align, avatar, bubble)
		}
	}

	if p.Position == PositionRight {
		row = lipgloss.PlaceHorizontal(p.Width, lipgloss.Right, row)
	}
	rows = append(rows, row)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func defaultMessageText(p MessageProps) string {
	return renderMarkdown(strings.TrimSpace(p.Message.Text), p.Width)
}

func defaultMessageImage(p MessageProps) string {
	label := p.Message.Image
	if alt, ok := p.ImageProps["alt"].(string); ok && alt != "" {
		label = alt
	}
	return PendingStyle.Render(wrapText("[image] "+label, p.Width))
}

// defaultDay draws a date separator above the first message of each day.
func defaultDay(p MessageProps) string {
	if p.Message.CreatedAt.IsZero() {
		return ""
	}
	if p.Previous != nil && message.IsSameDay(&p.Message, p.Previous) {
		return ""
	}
	label := DayStyle.Render(p.Message.CreatedAt.Local().Format(p.DateFormat))
	return lipgloss.PlaceHorizontal(p.Width, lipgloss.Center, label)
}

func defaultTime(p MessageProps) string {
	if p.Message.CreatedAt.IsZero() {
		return ""
	}
	return TimeStyle.Render(p.Message.CreatedAt.Local().Format(p.TimeFormat))
}

// quickRepliesVisible reports whether a message's quick replies are offered:
// only on the newest message unless KeepIt is set.
func quickRepliesVisible(m message.Message, next *message.Message) bool {
	qr := m.QuickReplies
	if qr == nil || len(qr.Values) == 0 {
		return false
	}
	return next == nil || qr.KeepIt
}

func defaultQuickReplies(p MessageProps) string {
	if !quickRepliesVisible(p.Message, p.Next) {
		return ""
	}
	var chips []string
	for i, v := range p.Message.QuickReplies.Values {
		style := QuickReplyStyle
		if slices.Contains(p.QuickReplySelection, i) {
			style = QuickReplyOnStyle
		}
		chips = append(chips, style.Render(fmt.Sprintf("%d %s", i+1, v.Title)))
	}
	return wrapChips(chips, p.Width)
}

// wrapChips lays chips out left to right, starting a new row when the next
// chip would overflow width.
func wrapChips(chips []string, width int) string {
	var rows []string
	var row []string
	used := 0
	for _, c := range chips {
		w := lipgloss.Width(c)
		if len(row) > 0 && used+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		row = append(row, c)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func defaultInputToolbar(rs *Renderers, p ToolbarProps) string {
	var cols []string
	if p.HasActions {
		cols = append(cols, rs.Actions(p))
	}
	cols = append(cols, rs.Composer(p), rs.Send(p))
	bar := lipgloss.JoinHorizontal(lipgloss.Bottom, cols...)
	if rs.Accessory != nil {
		bar = lipgloss.JoinVertical(lipgloss.Left, bar, rs.Accessory(p))
	}
	return bar
}

func defaultActions(p ToolbarProps) string {
	return ActionsStyle.Render("+")
}

func defaultSend(p ToolbarProps) string {
	label := p.Labels.Send
	width := lipgloss.Width(SendStyle.Render(label))
	if strings.TrimSpace(p.Text) == "" && !p.AlwaysShowSend {
		return lipgloss.NewStyle().Width(width).Render("")
	}
	if p.TypingDisabled {
		return SendDisabledStyle.Width(width).Render(label)
	}
	return SendStyle.Render(label)
}
