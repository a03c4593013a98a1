package tui

// page identifies the screen the model routes input to.
type page int

const (
	pageHome page = iota
	pageContact
	pageSeller
	pageTerms
)

func (p page) String() string {
	switch p {
	case pageContact:
		return "contact"
	case pageSeller:
		return "seller"
	case pageTerms:
		return "terms"
	default:
		return "home"
	}
}

const (
	defaultWidth  = 80
	defaultHeight = 24

	// Lines reserved below a form for the status line.
	formFooterHeight = 2

	// Maximum content width of the form and terms pages.
	maxContentWidth = 72
)
