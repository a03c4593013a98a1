package tui

import (
	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/campusmart/campusmart/internal/core/styles"
	"github.com/campusmart/campusmart/internal/tui/components/form"
)

// formFrame lays out a dialog below an intro line and above a status line.
// Forms taller than the terminal scroll so the focused field stays in view.
type formFrame struct {
	intro    string
	viewport viewport.Model
}

func newFormFrame(intro string) formFrame {
	return formFrame{
		intro: intro,
		viewport: viewport.New(
			viewport.WithWidth(defaultWidth),
			viewport.WithHeight(defaultHeight-formFooterHeight),
		),
	}
}

func (f *formFrame) SetSize(width, height int) {
	f.viewport.SetWidth(min(width, maxContentWidth))
	f.viewport.SetHeight(max(height-formFooterHeight, 1))
}

func (f *formFrame) render(d *form.Dialog, status string) string {
	intro := styles.TextMutedStyle.Width(f.viewport.Width()).Render(f.intro)
	body := lipgloss.JoinVertical(lipgloss.Left, intro, "", d.View())
	f.viewport.SetContent(body)
	f.follow(lipgloss.Height(intro) + 1 + d.FocusedLine())

	return lipgloss.JoinVertical(lipgloss.Left, f.viewport.View(), "", status)
}

// follow scrolls so that line sits in the upper third of the viewport.
func (f *formFrame) follow(line int) {
	top := f.viewport.YOffset()
	third := f.viewport.Height() / 3
	switch {
	case line < top:
		f.viewport.SetYOffset(line)
	case line > top+third:
		f.viewport.SetYOffset(line - third)
	}
}

// statusLine renders a submit failure, or nothing.
func statusLine(failure string) string {
	if failure == "" {
		return ""
	}
	return styles.FormErrorStyle.Render(failure)
}
