// Package tuitest provides testing utilities for TUI components.
package tuitest

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes and trailing whitespace so rendered
// views can be compared as plain text.
func StripANSI(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		result = append(result, strings.TrimRight(line, " "))
	}
	return strings.TrimRight(strings.Join(result, "\n"), "\n")
}

// KeyPress creates a key press message for a single rune.
func KeyPress(key rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: key, Text: string(key)})
}

// KeyCtrl creates a ctrl+<key> press message.
func KeyCtrl(key rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: key, Mod: tea.ModCtrl})
}

// KeyTab creates a tab key press message.
func KeyTab() tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})
}

// KeyShiftTab creates a shift+tab key press message.
func KeyShiftTab() tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift})
}

// KeyEsc creates an escape key press message.
func KeyEsc() tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
}

// KeySpace creates a space key press message.
func KeySpace() tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
}

// KeyDown creates a down arrow key press message.
func KeyDown() tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
}

// KeyUp creates an up arrow key press message.
func KeyUp() tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: tea.KeyUp})
}

// KeyEnter creates an enter key press message.
func KeyEnter() tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
}

// Keys converts s into one key press per rune, for typing into inputs.
func Keys(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		if r == ' ' {
			msgs = append(msgs, KeySpace())
			continue
		}
		msgs = append(msgs, KeyPress(r))
	}
	return msgs
}

// WindowSize creates a window size message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}
