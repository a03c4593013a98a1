package tui

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
)

// View renders the active page with the toast stack on top.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	w, h := m.width, m.height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}

	var body string
	switch m.page {
	case pageContact:
		body = m.contact.View()
	case pageSeller:
		body = m.seller.View()
	case pageTerms:
		body = m.terms.View()
	default:
		body = m.home.View()
	}

	// Pad to the full screen so the toast layer can anchor bottom-right.
	content := lipgloss.NewStyle().Width(w).Height(h).MaxHeight(h).Render(body)
	content = m.toastView.Overlay(content, w, h)

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}
