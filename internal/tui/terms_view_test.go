package tui

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/campusmart/campusmart/pkg/tuitest"
)

func TestTermsView(t *testing.T) {
	t.Run("renders the embedded document", func(t *testing.T) {
		v := NewTermsView(DefaultKeyMap(), zerolog.Nop())
		v.SetSize(80, 40)

		out := tuitest.StripANSI(v.View())
		assert.Contains(t, out, "Terms and Conditions")
		assert.Contains(t, out, "esc: back")
	})

	t.Run("scrolls with arrow keys", func(t *testing.T) {
		v := NewTermsView(DefaultKeyMap(), zerolog.Nop())
		v.SetSize(60, 8)

		before := v.viewport.YOffset()
		_, back := v.Update(tuitest.KeyDown())
		assert.False(t, back)
		assert.Equal(t, before+1, v.viewport.YOffset())
	})

	t.Run("esc goes back", func(t *testing.T) {
		v := NewTermsView(DefaultKeyMap(), zerolog.Nop())

		_, back := v.Update(tuitest.KeyEsc())
		assert.True(t, back)
	})

	t.Run("rewraps on width change", func(t *testing.T) {
		v := NewTermsView(DefaultKeyMap(), zerolog.Nop())

		v.SetSize(40, 20)
		narrow := v.viewport.TotalLineCount()
		v.SetSize(70, 20)
		wide := v.viewport.TotalLineCount()

		assert.Greater(t, narrow, wide)
	})
}
