package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/campusmart/campusmart/internal/core/styles"
)

type menuItem struct {
	icon  string
	label string
	desc  string
	// target is the page to open; quit items leave it unset.
	target page
	quit   bool
}

var homeMenu = []menuItem{
	{icon: styles.IconMail, label: "Contact Us", desc: "Send a message to the campusmart team", target: pageContact},
	{icon: styles.IconStore, label: "Sell on campusmart", desc: "Register as a seller", target: pageSeller},
	{icon: styles.IconDocument, label: "Terms and Conditions", desc: "Read the seller terms", target: pageTerms},
	{label: "Quit", quit: true},
}

// homeChoice is the outcome of a key press on the home menu.
type homeChoice struct {
	open   bool
	target page
	quit   bool
}

// HomeView is the landing menu.
type HomeView struct {
	keys   KeyMap
	cursor int
}

func NewHomeView(keys KeyMap) *HomeView {
	return &HomeView{keys: keys}
}

// Cursor returns the highlighted menu index.
func (v *HomeView) Cursor() int { return v.cursor }

func (v *HomeView) Update(msg tea.Msg) homeChoice {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return homeChoice{}
	}

	switch {
	case key.Matches(keyMsg, v.keys.Up):
		v.cursor = max(v.cursor-1, 0)
	case key.Matches(keyMsg, v.keys.Down):
		v.cursor = min(v.cursor+1, len(homeMenu)-1)
	case key.Matches(keyMsg, v.keys.Select):
		item := homeMenu[v.cursor]
		if item.quit {
			return homeChoice{quit: true}
		}
		return homeChoice{open: true, target: item.target}
	case keyMsg.String() == "q":
		return homeChoice{quit: true}
	}
	return homeChoice{}
}

func (v *HomeView) View() string {
	var b strings.Builder
	for i, item := range homeMenu {
		label := item.label
		if item.icon != "" {
			label = item.icon + "  " + label
		}

		if i == v.cursor {
			b.WriteString(styles.ViewSelectedStyle.Render(styles.IconCursor + " " + label))
		} else {
			b.WriteString(styles.ViewNormalStyle.Render("  " + label))
		}
		if item.desc != "" {
			b.WriteString("  " + styles.TextMutedStyle.Render(item.desc))
		}
		b.WriteString("\n")
	}

	help := styles.HelpStyle.Render("↑/↓: move  enter: open  ctrl+x: dismiss toast  q: quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.HeaderStyle.Render("campusmart"),
		styles.TextMutedStyle.Render("The marketplace for your campus."),
		"",
		b.String(),
		help,
	)
}
