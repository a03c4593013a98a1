package tui

import (
	_ "embed"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"

	"github.com/campusmart/campusmart/internal/core/styles"
)

//go:embed terms.md
var termsMarkdown string

// TermsView shows the terms and conditions as rendered markdown.
type TermsView struct {
	viewport viewport.Model
	keys     KeyMap
	logger   zerolog.Logger
	width    int
}

func NewTermsView(keys KeyMap, logger zerolog.Logger) *TermsView {
	v := &TermsView{
		viewport: viewport.New(
			viewport.WithWidth(defaultWidth),
			viewport.WithHeight(defaultHeight-formFooterHeight),
		),
		keys:   keys,
		logger: logger.With().Str("component", "terms_view").Logger(),
	}
	v.SetSize(defaultWidth, defaultHeight)
	return v
}

// SetSize resizes the viewport and re-wraps the document when the width changes.
func (v *TermsView) SetSize(width, height int) {
	w := min(width, maxContentWidth)
	v.viewport.SetHeight(max(height-formFooterHeight, 1))
	if w == v.width {
		return
	}
	v.width = w
	v.viewport.SetWidth(w)
	v.viewport.SetContent(v.render(w))
}

func (v *TermsView) render(width int) string {
	style := styles.GlamourStyle()
	noMargin := uint(0)
	style.Document.Margin = &noMargin

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		v.logger.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
		return termsMarkdown
	}

	rendered, err := renderer.Render(termsMarkdown)
	if err != nil {
		v.logger.Debug().Err(err).Msg("failed to render markdown, showing raw content")
		return termsMarkdown
	}

	return strings.TrimSpace(rendered)
}

// Update scrolls the document. back reports that the user left the page.
func (v *TermsView) Update(msg tea.Msg) (cmd tea.Cmd, back bool) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(keyMsg, v.keys.Back) {
		return nil, true
	}
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd, false
}

func (v *TermsView) View() string {
	help := styles.HelpStyle.Render("↑/↓: scroll  esc: back")
	return lipgloss.JoinVertical(lipgloss.Left, v.viewport.View(), help)
}
