package ui

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/zhubert/chatpane/internal/keys"
)

// ActionSheetOptions describe one action sheet invocation.
type ActionSheetOptions struct {
	Title             string
	Options           []string
	CancelButtonIndex int
}

// ActionSheet presents a list of options and reports the chosen index.
// Dismissing the sheet reports CancelButtonIndex.
type ActionSheet interface {
	ShowActionSheetWithOptions(opts ActionSheetOptions, onSelect func(index int)) tea.Cmd
}

// Sheet is the built-in ActionSheet: a huh select drawn over the bottom of the
// chat.
type Sheet struct {
	form     *huh.Form
	choice   int
	opts     ActionSheetOptions
	onSelect func(int)
	visible  bool
}

// NewSheet creates a hidden sheet.
func NewSheet() *Sheet {
	return &Sheet{}
}

// ShowActionSheetWithOptions opens the sheet.
func (s *Sheet) ShowActionSheetWithOptions(opts ActionSheetOptions, onSelect func(int)) tea.Cmd {
	options := make([]huh.Option[int], len(opts.Options))
	for i, label := range opts.Options {
		options[i] = huh.NewOption(label, i)
	}

	s.opts = opts
	s.onSelect = onSelect
	s.choice = 0
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(opts.Title).
				Options(options...).
				Value(&s.choice),
		),
	).WithTheme(sheetTheme()).
		WithShowHelp(false).
		WithWidth(SheetWidth - SheetStyle.GetHorizontalFrameSize())
	s.visible = true
	return s.form.Init()
}

// Visible reports whether the sheet is open.
func (s *Sheet) Visible() bool {
	return s.visible
}

// Update routes input to the open sheet. Enter picks the highlighted option and
// Escape cancels.
func (s *Sheet) Update(msg tea.Msg) tea.Cmd {
	if !s.visible {
		return nil
	}
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter:
			return s.close(s.choice)
		case keys.Escape:
			return s.close(s.opts.CancelButtonIndex)
		}
	}
	m, cmd := s.form.Update(msg)
	s.form = m.(*huh.Form)
	return cmd
}

func (s *Sheet) close(index int) tea.Cmd {
	s.visible = false
	cb := s.onSelect
	s.onSelect = nil
	if cb != nil {
		cb(index)
	}
	return nil
}

// View renders the sheet box.
func (s *Sheet) View() string {
	if !s.visible {
		return ""
	}
	return SheetStyle.Width(SheetWidth).Render(s.form.View())
}

// Overlay draws the open sheet centered along the bottom edge of base.
func (s *Sheet) Overlay(base string, width, height int) string {
	if !s.visible || width <= 0 || height <= 0 {
		return base
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(base).Draw(scr, area)

	box := s.View()
	w, h := min(lipgloss.Width(box), width), min(lipgloss.Height(box), height)
	x := (width - w) / 2
	y := height - h
	uv.NewStyledString(box).Draw(scr, uv.Rect(x, y, w, h))

	return scr.Render()
}

func sheetTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)
		t.Focused.Base = lipgloss.NewStyle()
		t.Focused.Title = SheetTitleStyle
		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).SetString("> ")
		t.Focused.Option = lipgloss.NewStyle().Foreground(ColorText)
		t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorPrimary)
		t.Blurred = t.Focused
		return t
	})
}
