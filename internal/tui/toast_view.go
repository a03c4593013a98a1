package tui

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/campusmart/campusmart/internal/core/styles"
	"github.com/campusmart/campusmart/internal/core/toast"
)

// ToastView renders the active toasts and composites them as an overlay.
// It holds no state of its own; every render reads the notifier.
type ToastView struct {
	notifier toast.Notifier
}

// NewToastView panics with a *toast.ConfigurationError when n is nil.
func NewToastView(n toast.Notifier) *ToastView {
	return &ToastView{notifier: toast.Require("toast surface", n)}
}

// View renders the toast stack, oldest at top and newest at bottom.
func (v *ToastView) View() string {
	toasts := v.notifier.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, renderToast(t))
	}

	return strings.Join(rendered, "\n")
}

func renderToast(t toast.Toast) string {
	title := styles.ToastIconStyle.Render(styles.IconCheck) + " " + styles.ToastTitleStyle.Render(t.Title)
	if t.Description == "" {
		return styles.ToastStyle.Render(title)
	}

	return styles.ToastStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		styles.ToastDescriptionStyle.Render(t.Description),
	))
}

// Overlay composites the toast stack over background in the lower-right corner.
func (v *ToastView) Overlay(background string, width, height int) string {
	toastContent := v.View()
	if toastContent == "" {
		return background
	}

	bgLayer := lipgloss.NewLayer(background)
	toastLayer := lipgloss.NewLayer(toastContent)

	toastW := lipgloss.Width(toastContent)
	toastH := lipgloss.Height(toastContent)

	rightX := max(width-toastW-1, 0)
	bottomY := max(height-toastH, 0)

	toastLayer.X(rightX).Y(bottomY).Z(2)

	compositor := lipgloss.NewCompositor(bgLayer, toastLayer)
	return compositor.Render()
}
