package tuitest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[1mTitle\x1b[0m   \nbody  \n\n"
	assert.Equal(t, "Title\nbody", StripANSI(in))
}

func TestKeys(t *testing.T) {
	msgs := Keys("a b")
	assert.Len(t, msgs, 3)
	assert.Equal(t, "a", msgs[0].(interface{ String() string }).String())
	assert.Equal(t, "space", msgs[1].(interface{ String() string }).String())
}

func TestKeyStrings(t *testing.T) {
	assert.Equal(t, "tab", KeyTab().String())
	assert.Equal(t, "shift+tab", KeyShiftTab().String())
	assert.Equal(t, "ctrl+s", KeyCtrl('s').String())
	assert.Equal(t, "esc", KeyEsc().String())
	assert.Equal(t, "enter", KeyEnter().String())
}
