package form

import (
	tea "charm.land/bubbletea/v2"

	"github.com/campusmart/campusmart/internal/core/styles"
)

// CheckboxField is a boolean form field toggled with space or x.
type CheckboxField struct {
	fieldChrome
	text    string
	checked bool
}

// NewCheckboxField creates an unchecked checkbox. text is shown beside the box.
func NewCheckboxField(label, text string) *CheckboxField {
	return &CheckboxField{
		fieldChrome: fieldChrome{label: label},
		text:        text,
	}
}

func (f *CheckboxField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "space", "x":
			f.checked = !f.checked
		}
	}
	return f, nil
}

func (f *CheckboxField) View() string {
	box := "[ ]"
	boxStyle := styles.TextMutedStyle
	if f.checked {
		box = "[x]"
		boxStyle = styles.CheckboxCheckedStyle
	}
	return f.render(boxStyle.Render(box) + " " + styles.TextForegroundStyle.Render(f.text))
}

func (f *CheckboxField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *CheckboxField) Blur() { f.focused = false }

func (f *CheckboxField) Value() any { return f.checked }

// SetChecked sets the checkbox state.
func (f *CheckboxField) SetChecked(v bool) { f.checked = v }

func (f *CheckboxField) Reset() {
	f.checked = false
	f.err = ""
}
