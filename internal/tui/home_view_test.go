package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusmart/campusmart/internal/core/styles"
	"github.com/campusmart/campusmart/pkg/tuitest"
)

func TestHomeView_Update(t *testing.T) {
	v := NewHomeView(DefaultKeyMap())

	assert.Equal(t, homeChoice{open: true, target: pageContact}, v.Update(tuitest.KeyEnter()))

	v.Update(tuitest.KeyPress('j'))
	assert.Equal(t, homeChoice{open: true, target: pageSeller}, v.Update(tuitest.KeyEnter()))

	v.Update(tuitest.KeyPress('k'))
	assert.Equal(t, 0, v.Cursor())

	assert.Equal(t, homeChoice{}, v.Update(tuitest.WindowSize(10, 10)))
	assert.Equal(t, homeChoice{quit: true}, v.Update(tuitest.KeyPress('q')))
}

func TestHomeView_View_marks_cursor(t *testing.T) {
	v := NewHomeView(DefaultKeyMap())
	v.Update(tuitest.KeyDown())

	out := tuitest.StripANSI(v.View())
	assert.Contains(t, out, styles.IconCursor+" "+styles.IconStore+"  Sell on campusmart")
	assert.Contains(t, out, "Terms and Conditions")
	assert.Contains(t, out, "Quit")
}
