package tui

import tea "charm.land/bubbletea/v2"

// toastsChangedMsg tells the model the toast sequence changed.
type toastsChangedMsg struct{}

// subscriber is implemented by toast.Store.
type subscriber interface {
	Subscribe(fn func())
}

// ToastSignal turns store change callbacks into coalesced tea messages.
// Expiry runs on timer goroutines, so changes cannot reach the program
// directly; the model keeps one WaitForSignal command outstanding instead.
type ToastSignal struct {
	signal chan struct{}
}

// NewToastSignal subscribes to s and returns the signal.
func NewToastSignal(s subscriber) *ToastSignal {
	ts := &ToastSignal{signal: make(chan struct{}, 1)}
	s.Subscribe(ts.Notify)
	return ts
}

// Notify emits a non-blocking signal. Signals raised while one is pending
// collapse into it.
func (s *ToastSignal) Notify() {
	select {
	case s.signal <- struct{}{}:
	default:
	}
}

// WaitForSignal blocks until the toast sequence changes.
func (s *ToastSignal) WaitForSignal() tea.Cmd {
	return func() tea.Msg {
		<-s.signal
		return toastsChangedMsg{}
	}
}
