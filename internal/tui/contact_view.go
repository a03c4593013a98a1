package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/campusmart/campusmart/internal/core/contact"
	"github.com/campusmart/campusmart/internal/core/submission"
	"github.com/campusmart/campusmart/internal/core/toast"
	"github.com/campusmart/campusmart/internal/tui/components/form"
)

const contactIntro = "We'd love to hear from you. Please fill out this form and we'll get back to you as soon as possible."

// ContactView binds the contact page to a form dialog.
type ContactView struct {
	page   *contact.Page
	dialog *form.Dialog
	frame  formFrame
	logger zerolog.Logger

	name    *form.TextField
	email   *form.TextField
	message *form.TextAreaField

	failure string
}

// NewContactView builds the contact form. n must not be nil.
func NewContactView(n toast.Notifier, recorder submission.Recorder, logger zerolog.Logger) *ContactView {
	v := &ContactView{
		page:    contact.NewPage(n, recorder, logger),
		frame:   newFormFrame(contactIntro),
		logger:  logger.With().Str("component", "contact_view").Logger(),
		name:    form.NewTextField("Name", "Your name", ""),
		email:   form.NewTextField("Email", "you@example.com", ""),
		message: form.NewTextAreaField("Message", "How can we help?", ""),
	}

	v.dialog = form.NewDialog("Contact Us",
		[]form.Field{v.name, v.email, v.message},
		[]string{contact.FieldName, contact.FieldEmail, contact.FieldMessage},
	)
	return v
}

// Update routes msg to the dialog. back reports that the user left the page.
func (v *ContactView) Update(ctx context.Context, msg tea.Msg) (cmd tea.Cmd, back bool) {
	v.dialog, cmd = v.dialog.Update(msg)

	switch {
	case v.dialog.Cancelled():
		v.dialog.ClearStatus()
		return cmd, true
	case v.dialog.Submitted():
		v.dialog.ClearStatus()
		return tea.Batch(cmd, v.submit(ctx)), false
	}
	return cmd, false
}

func (v *ContactView) submit(ctx context.Context) tea.Cmd {
	v.page.Form = contact.Form{
		Name:    form.StringValue(v.name),
		Email:   form.StringValue(v.email),
		Message: form.StringValue(v.message),
	}

	ok, err := v.page.Submit(ctx)
	if err != nil {
		v.logger.Error().Err(err).Msg("contact submit failed")
		v.failure = "Could not send your message: " + err.Error()
		return nil
	}

	v.failure = ""
	if !ok {
		v.dialog.SetErrors(v.page.Errors)
		return nil
	}
	return v.dialog.Reset()
}

// Page exposes the page state.
func (v *ContactView) Page() *contact.Page { return v.page }

func (v *ContactView) SetSize(width, height int) {
	v.frame.SetSize(width, height)
}

func (v *ContactView) View() string {
	return v.frame.render(v.dialog, statusLine(v.failure))
}
