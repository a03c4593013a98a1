package form

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextAreaField is a multi-line text input form field.
type TextAreaField struct {
	fieldChrome
	input textarea.Model
}

// NewTextAreaField creates a new multi-line text input field.
func NewTextAreaField(label, placeholder, defaultVal string) *TextAreaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	ta.SetWidth(40)

	if defaultVal != "" {
		ta.SetValue(defaultVal)
	}

	return &TextAreaField{
		fieldChrome: fieldChrome{label: label},
		input:       ta,
	}
}

func (f *TextAreaField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextAreaField) View() string { return f.render(f.input.View()) }

func (f *TextAreaField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextAreaField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextAreaField) Value() any { return f.input.Value() }

// SetValue replaces the field's text.
func (f *TextAreaField) SetValue(v string) { f.input.SetValue(v) }

func (f *TextAreaField) Reset() {
	f.input.Reset()
	f.err = ""
}
