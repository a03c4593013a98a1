package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/campusmart/campusmart/internal/core/styles"
)

// filterer is an optional interface for fields that support list filtering.
type filterer interface {
	IsFiltering() bool
}

// Dialog is a form container that manages focus cycling, submission, and
// cancellation across a set of form fields.
type Dialog struct {
	fields       []Field
	names        []string // parallel slice: error-map key for each field
	focusedField int
	submitted    bool
	cancelled    bool
	Title        string
}

// NewDialog creates a form dialog with the given fields and names. Names are
// the keys used by SetErrors. The first field is focused.
func NewDialog(title string, fields []Field, names []string) *Dialog {
	d := &Dialog{
		fields: fields,
		names:  names,
		Title:  title,
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Update handles key input for the dialog, managing focus cycling and submit/cancel.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	if d.isFocusedFieldFiltering() {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab":
		return d.advanceFocus()
	case "shift+tab":
		return d.retreatFocus()
	case "ctrl+s":
		d.submitted = true
		return d, nil
	case "enter":
		if d.isTextAreaFocused() {
			// Let textarea handle enter for newline insertion
			return d.updateFocusedField(msg)
		}
		if c, ok := d.focused().(chooser); ok {
			c.Choose()
		}
		return d.advanceFocus()
	case "esc":
		d.cancelled = true
		return d, nil
	}

	return d.updateFocusedField(msg)
}

// View renders the title, all fields vertically with spacing, and help text.
func (d *Dialog) View() string {
	var parts []string
	if d.Title != "" {
		parts = append(parts, styles.HeaderStyle.Render(d.Title))
	}
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}

	help := styles.TextMutedStyle.Render("tab: next  shift+tab: prev  ctrl+s: submit  esc: back")
	parts = append(parts, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// SetErrors shows errs[name] under each field and clears fields without an
// entry.
func (d *Dialog) SetErrors(errs map[string]string) {
	for i, field := range d.fields {
		field.SetError(errs[d.names[i]])
	}
}

// Reset restores every field, clears status flags, and focuses the first field.
func (d *Dialog) Reset() tea.Cmd {
	for _, field := range d.fields {
		field.Reset()
		field.Blur()
	}
	d.submitted = false
	d.cancelled = false
	d.focusedField = 0
	if len(d.fields) == 0 {
		return nil
	}
	return d.fields[0].Focus()
}

// ClearStatus forgets a pending submit or cancel so the dialog can be reused.
func (d *Dialog) ClearStatus() {
	d.submitted = false
	d.cancelled = false
}

// Submitted returns whether the form was submitted.
func (d *Dialog) Submitted() bool { return d.submitted }

// Cancelled returns whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

// FocusedIndex returns the position of the focused field.
func (d *Dialog) FocusedIndex() int { return d.focusedField }

// FocusedLine returns the line of View at which the focused field starts.
func (d *Dialog) FocusedLine() int {
	line := 0
	if d.Title != "" {
		line = lipgloss.Height(styles.HeaderStyle.Render(d.Title))
	}
	for _, f := range d.fields[:d.focusedField] {
		line += lipgloss.Height(f.View()) + 1
	}
	return line
}

func (d *Dialog) focused() Field {
	if len(d.fields) == 0 {
		return nil
	}
	return d.fields[d.focusedField]
}

func (d *Dialog) advanceFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	next := d.focusedField + 1
	if next >= len(d.fields) {
		// Past the last field submits
		d.submitted = true
		return d, nil
	}

	d.fields[d.focusedField].Blur()
	d.focusedField = next
	cmd := d.fields[d.focusedField].Focus()
	return d, cmd
}

func (d *Dialog) retreatFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 || d.focusedField == 0 {
		return d, nil
	}

	d.fields[d.focusedField].Blur()
	d.focusedField--
	cmd := d.fields[d.focusedField].Focus()
	return d, cmd
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}

func (d *Dialog) isTextAreaFocused() bool {
	_, ok := d.focused().(*TextAreaField)
	return ok
}

func (d *Dialog) isFocusedFieldFiltering() bool {
	if f, ok := d.focused().(filterer); ok {
		return f.IsFiltering()
	}
	return false
}
