// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// Text styles.
	TextMutedStyle      lipgloss.Style
	TextForegroundStyle lipgloss.Style
	TextPrimaryStyle    lipgloss.Style

	// TUI shared styles.
	HeaderStyle       lipgloss.Style
	HelpStyle         lipgloss.Style
	ViewSelectedStyle lipgloss.Style
	ViewNormalStyle   lipgloss.Style

	FormTitleStyle        lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormReadOnlyStyle     lipgloss.Style

	SelectFieldItemSelectedStyle lipgloss.Style
	CheckboxCheckedStyle         lipgloss.Style

	// Toast styles.
	ToastStyle            lipgloss.Style
	ToastTitleStyle       lipgloss.Style
	ToastDescriptionStyle lipgloss.Style
	ToastIconStyle        lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		MarginBottom(1)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ViewSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	ViewNormalStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	FormReadOnlyStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	SelectFieldItemSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	CheckboxCheckedStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	ToastStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSuccess).
		Background(ColorBackground).
		Padding(0, 1).
		Width(toastWidth)
	ToastTitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	ToastDescriptionStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	ToastIconStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
}

// toastWidth is the fixed outer width of a toast block.
const toastWidth = 44

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
