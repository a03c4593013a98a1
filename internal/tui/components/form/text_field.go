package form

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/campusmart/campusmart/internal/core/styles"
)

// TextField is a single-line text input form field.
type TextField struct {
	fieldChrome
	input      textinput.Model
	defaultVal string
	readOnly   bool
}

// NewTextField creates a new single-line text input field.
func NewTextField(label, placeholder, defaultVal string) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.SetWidth(40)

	if defaultVal != "" {
		ti.SetValue(defaultVal)
	}

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	return &TextField{
		fieldChrome: fieldChrome{label: label},
		input:       ti,
		defaultVal:  defaultVal,
	}
}

// NewPasswordField creates a text field that masks its input.
func NewPasswordField(label, placeholder string) *TextField {
	f := NewTextField(label, placeholder, "")
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

// NewReadOnlyField creates a text field that displays value and ignores input.
func NewReadOnlyField(label, value string) *TextField {
	f := NewTextField(label, "", value)
	f.readOnly = true
	return f
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused || f.readOnly {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextField) View() string {
	if f.readOnly {
		return f.render(styles.FormReadOnlyStyle.Render(f.input.Value()))
	}
	return f.render(f.input.View())
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	if f.readOnly {
		return nil
	}
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextField) Value() any { return f.input.Value() }

// SetValue replaces the field's text.
func (f *TextField) SetValue(v string) { f.input.SetValue(v) }

func (f *TextField) Reset() {
	f.input.SetValue(f.defaultVal)
	f.err = ""
}
