package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/campusmart/campusmart/internal/core/styles"
)

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() any    // string for text/textarea/select, bool for checkbox
	Label() string // Display label for the field

	// SetError shows msg under the field. An empty msg clears it.
	SetError(msg string)
	Error() string
	// Reset restores the field to its initial value and clears its error.
	Reset()
}

// fieldChrome holds the state every field renders the same way.
type fieldChrome struct {
	label   string
	focused bool
	err     string
}

func (c *fieldChrome) SetError(msg string) { c.err = msg }
func (c *fieldChrome) Error() string       { return c.err }
func (c *fieldChrome) Focused() bool       { return c.focused }
func (c *fieldChrome) Label() string       { return c.label }

// render wraps body with the label, the focus border, and the error line.
func (c *fieldChrome) render(body string) string {
	titleStyle := styles.TextMutedStyle
	if c.focused {
		titleStyle = styles.FormTitleStyle
	}

	parts := []string{titleStyle.Render(c.label), body}
	if c.err != "" {
		parts = append(parts, styles.FormErrorStyle.Render(c.err))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	borderStyle := styles.FormFieldStyle
	if c.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(content)
}

// StringValue returns f's value as a string, or "" for non-string fields.
func StringValue(f Field) string {
	s, _ := f.Value().(string)
	return s
}

// BoolValue returns f's value as a bool, or false for non-bool fields.
func BoolValue(f Field) bool {
	b, _ := f.Value().(bool)
	return b
}
