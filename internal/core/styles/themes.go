package styles

import (
	"image/color"
	"maps"
	"slices"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of semantic colors every style is built from.
type Palette struct {
	Primary    color.Color
	Secondary  color.Color
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color
	Dark       bool
}

// DefaultTheme is used when the config names no theme.
const DefaultTheme = "campus"

// swatch lists a palette as hex strings in Palette field order.
type swatch struct {
	primary, secondary, fg, muted, bg, surface, success, warning, err string
	dark                                                            bool
}

var swatches = map[string]swatch{
	"campus": {
		primary: "#2563eb", secondary: "#60a5fa",
		fg: "#e5e7eb", muted: "#6b7280",
		bg: "#111827", surface: "#374151",
		success: "#22c55e", warning: "#eab308", err: "#ef4444",
		dark: true,
	},
	"campus-light": {
		primary: "#1d4ed8", secondary: "#0284c7",
		fg: "#111827", muted: "#6b7280",
		bg: "#f9fafb", surface: "#e5e7eb",
		success: "#15803d", warning: "#a16207", err: "#b91c1c",
	},
	"midnight": {
		primary: "#a78bfa", secondary: "#f0abfc",
		fg: "#ede9fe", muted: "#6d6a8a",
		bg: "#0f0b1e", surface: "#2e2a47",
		success: "#86efac", warning: "#fcd34d", err: "#fda4af",
		dark: true,
	},
}

var themes = buildThemes(swatches)

func buildThemes(in map[string]swatch) map[string]Palette {
	out := make(map[string]Palette, len(in))
	for name, s := range in {
		out[name] = Palette{
			Primary:    hexColor(s.primary),
			Secondary:  hexColor(s.secondary),
			Foreground: hexColor(s.fg),
			Muted:      hexColor(s.muted),
			Background: hexColor(s.bg),
			Surface:    hexColor(s.surface),
			Success:    hexColor(s.success),
			Warning:    hexColor(s.warning),
			Error:      hexColor(s.err),
			Dark:       s.dark,
		}
	}
	return out
}

// hexColor parses a #rrggbb string. Malformed input is a programming error in
// the swatch table.
func hexColor(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic("styles: bad swatch color " + hex)
	}
	return lipgloss.Color(c.Hex())
}

// ThemeNames returns the built-in theme names in sorted order.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(themes))
}

// GetPalette looks up a built-in theme.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle derives a markdown style from the active palette. The terms
// page renders through it.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig
	if !CurrentPalette.Dark {
		cfg = glamourstyles.LightStyleConfig
	}

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	link := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg
	cfg.Item.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = colorHexPtr(ColorBackground)
	cfg.H1.BackgroundColor = primary
	cfg.H2.Color = primary
	cfg.H3.Color = primary
	cfg.Enumeration.Color = primary

	cfg.Link.Color = link
	cfg.LinkText.Color = link

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	return cfg
}
