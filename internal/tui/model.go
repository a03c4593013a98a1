// Package tui implements the campusmart terminal interface.
package tui

import (
	"context"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/campusmart/campusmart/internal/core/submission"
	"github.com/campusmart/campusmart/internal/core/toast"
)

// Options configures the TUI model.
type Options struct {
	// Toasts is the notification store shared by every page. Required.
	Toasts *toast.Store
	// Recorder keeps an audit trail of submissions. Optional.
	Recorder submission.Recorder
	Logger   zerolog.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx    context.Context
	keys   KeyMap
	logger zerolog.Logger

	page     page
	home     *HomeView
	contact  *ContactView
	seller   *SellerView
	terms    *TermsView
	previous page

	toasts    *toast.Store
	toastView *ToastView
	signal    *ToastSignal

	width    int
	height   int
	quitting bool
}

// New builds the model. It panics with a *toast.ConfigurationError when no
// toast store is given.
func New(ctx context.Context, opts Options) Model {
	var notifier toast.Notifier
	if opts.Toasts != nil {
		notifier = opts.Toasts
	}
	notifier = toast.Require("tui", notifier)

	keys := DefaultKeyMap()
	return Model{
		ctx:       ctx,
		keys:      keys,
		logger:    opts.Logger.With().Str("component", "tui").Logger(),
		page:      pageHome,
		home:      NewHomeView(keys),
		contact:   NewContactView(notifier, opts.Recorder, opts.Logger),
		seller:    NewSellerView(notifier, opts.Recorder, opts.Logger),
		terms:     NewTermsView(keys, opts.Logger),
		toasts:    opts.Toasts,
		toastView: NewToastView(notifier),
		signal:    NewToastSignal(opts.Toasts),
		width:     defaultWidth,
		height:    defaultHeight,
	}
}

// Init starts listening for toast changes.
func (m Model) Init() tea.Cmd {
	return m.signal.WaitForSignal()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.setSizes()
		return m, nil
	case toastsChangedMsg:
		// Rendering reads the store, so there is nothing to copy here.
		return m, m.signal.WaitForSignal()
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m.routeToPage(msg)
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Dismiss):
		if newest, ok := m.toasts.Newest(); ok {
			m.toasts.Dismiss(newest.ID)
		}
		return m, nil
	case m.page == pageSeller && key.Matches(msg, m.keys.Terms):
		m.navigate(pageTerms)
		return m, nil
	}

	if m.page == pageHome {
		choice := m.home.Update(msg)
		switch {
		case choice.quit:
			m.quitting = true
			return m, tea.Quit
		case choice.open:
			m.navigate(choice.target)
		}
		return m, nil
	}

	return m.routeToPage(msg)
}

func (m Model) routeToPage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		back bool
	)

	switch m.page {
	case pageContact:
		cmd, back = m.contact.Update(m.ctx, msg)
	case pageSeller:
		cmd, back = m.seller.Update(m.ctx, msg)
	case pageTerms:
		cmd, back = m.terms.Update(msg)
	default:
		return m, nil
	}

	if back {
		m.goBack()
	}
	return m, cmd
}

func (m *Model) navigate(p page) {
	m.logger.Debug().Stringer("from", m.page).Stringer("to", p).Msg("navigate")
	m.previous = m.page
	m.page = p
}

// goBack returns from terms to the page that opened it, and from every other
// page to the home menu.
func (m *Model) goBack() {
	target := pageHome
	if m.page == pageTerms {
		target = m.previous
	}
	m.navigate(target)
}

func (m *Model) setSizes() {
	m.contact.SetSize(m.width, m.height)
	m.seller.SetSize(m.width, m.height)
	m.terms.SetSize(m.width, m.height)
}
