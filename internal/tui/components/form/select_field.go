package form

import (
	"io"
	"slices"

	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/campusmart/campusmart/internal/core/styles"
)

const selectMaxVisible = 8

// chooser is implemented by fields that commit a highlighted choice on enter.
type chooser interface {
	Choose()
}

// SelectFormField is a single-select form field wrapping list.Model.
// It starts with no choice; Value is "" until an option is chosen by moving
// the highlight or pressing enter.
type SelectFormField struct {
	fieldChrome
	list        list.Model
	options     []string
	placeholder string
	value       string
	onChange    func(string)
}

// selectDelegate renders items in a single-select list.
type selectDelegate struct{}

func (d selectDelegate) Height() int                             { return 1 }
func (d selectDelegate) Spacing() int                            { return 0 }
func (d selectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d selectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectItem)
	if !ok {
		return
	}

	style := styles.TextForegroundStyle
	cursor := "  "
	if index == m.Index() {
		style = styles.SelectFieldItemSelectedStyle
		cursor = styles.IconCursor + " "
	}

	_, _ = io.WriteString(w, cursor)
	_, _ = io.WriteString(w, style.Render(item.label))
}

// NewSelectFormField creates a single-select field. placeholder is shown
// while nothing is chosen.
func NewSelectFormField(label, placeholder string, options []string) *SelectFormField {
	l := list.New(nil, selectDelegate{}, 40, 1)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.Styles.TitleBar = lipgloss.NewStyle()
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	l.FilterInput.Prompt = "/ "
	filterStyles := textinput.DefaultStyles(true)
	filterStyles.Focused.Prompt = styles.TextPrimaryStyle
	filterStyles.Cursor.Color = styles.ColorPrimary
	l.FilterInput.SetStyles(filterStyles)

	f := &SelectFormField{
		fieldChrome: fieldChrome{label: label},
		list:        l,
		placeholder: placeholder,
	}
	f.SetOptions(options)
	return f
}

// OnChange registers fn to be called with the new value whenever the choice
// changes through user input.
func (f *SelectFormField) OnChange(fn func(string)) { f.onChange = fn }

// SetOptions replaces the available options. The current choice is kept
// when it is still an option and cleared otherwise.
func (f *SelectFormField) SetOptions(options []string) {
	f.options = slices.Clone(options)

	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = selectItem{label: opt, index: i}
	}

	f.list.ResetFilter()
	f.list.SetItems(items)
	f.list.SetHeight(max(min(len(options), selectMaxVisible), 1))
	f.list.SetShowPagination(len(options) > selectMaxVisible)

	if i := slices.Index(f.options, f.value); i >= 0 {
		f.list.Select(i)
	} else {
		f.value = ""
		f.list.Select(0)
	}
}

// SetPlaceholder replaces the text shown while nothing is chosen.
func (f *SelectFormField) SetPlaceholder(p string) { f.placeholder = p }

// Options returns the available options.
func (f *SelectFormField) Options() []string { return slices.Clone(f.options) }

// SetValue chooses v. Values that are not options clear the choice.
func (f *SelectFormField) SetValue(v string) {
	i := slices.Index(f.options, v)
	if i < 0 {
		f.value = ""
		return
	}
	f.value = v
	f.list.Select(i)
}

func (f *SelectFormField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	wasFiltering := f.list.SettingFilter()
	before := f.list.Index()

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && !f.list.SettingFilter() {
		switch {
		case wasFiltering && keyMsg.String() == "enter":
			f.Choose()
		case !wasFiltering && (f.list.Index() != before || isMoveKey(keyMsg.String())):
			f.Choose()
		}
	}

	return f, cmd
}

// Choose commits the highlighted option.
func (f *SelectFormField) Choose() {
	item, ok := f.list.SelectedItem().(selectItem)
	if !ok || item.index < 0 || item.index >= len(f.options) {
		return
	}

	v := f.options[item.index]
	if v == f.value {
		return
	}
	f.value = v
	if f.onChange != nil {
		f.onChange(v)
	}
}

func isMoveKey(k string) bool {
	switch k {
	case "up", "down", "k", "j":
		return true
	}
	return false
}

func (f *SelectFormField) View() string {
	if !f.focused {
		if f.value == "" {
			return f.render(styles.TextMutedStyle.Render(f.placeholder))
		}
		return f.render(styles.TextForegroundStyle.Render(f.value))
	}

	if len(f.options) == 0 {
		return f.render(styles.TextMutedStyle.Render(f.placeholder))
	}

	if f.list.SettingFilter() {
		return f.render(lipgloss.JoinVertical(lipgloss.Left,
			f.list.FilterInput.View(),
			f.list.View(),
		))
	}
	return f.render(f.list.View())
}

func (f *SelectFormField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *SelectFormField) Blur() {
	f.focused = false
}

func (f *SelectFormField) Value() any { return f.value }

func (f *SelectFormField) Reset() {
	f.value = ""
	f.err = ""
	f.list.ResetFilter()
	f.list.Select(0)
}

// IsFiltering returns whether the list is currently filtering.
func (f *SelectFormField) IsFiltering() bool {
	return f.list.SettingFilter()
}
