package form

// selectItem is the list item used by select fields.
type selectItem struct {
	label string
	index int
}

func (i selectItem) FilterValue() string { return i.label }
