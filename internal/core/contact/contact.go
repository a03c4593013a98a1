// Package contact implements the "Contact Us" page: a three-field form that
// confirms delivery with a toast and then clears itself.
package contact

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusmart/campusmart/internal/core/submission"
	"github.com/campusmart/campusmart/internal/core/toast"
	"github.com/campusmart/campusmart/internal/core/validate"
)

// Toast shown after a successful submit.
const (
	SuccessTitle       = "Message Sent"
	SuccessDescription = "We've received your message and will get back to you soon."
)

// Field names used as error-map keys.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Form holds the contact form values.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate checks every field and returns criterio field errors.
func (f Form) Validate() error {
	return validate.Collect(
		validate.Field(FieldName, f.Name, validate.Required("Name is required")),
		validate.Field(FieldEmail, f.Email, validate.All(validate.Required("Email is required"), validate.Email)),
		validate.Field(FieldMessage, f.Message, validate.Required("Message is required")),
	)
}

// Page is the contact page state: field values plus the errors produced by
// the last submit attempt.
type Page struct {
	Form   Form
	Errors map[string]string

	notifier toast.Notifier
	recorder submission.Recorder
	logger   zerolog.Logger
}

// NewPage creates an empty contact page. notifier is required; recorder may
// be nil, in which case submissions are only logged.
func NewPage(notifier toast.Notifier, recorder submission.Recorder, logger zerolog.Logger) *Page {
	return &Page{
		Errors:   map[string]string{},
		notifier: toast.Require("contact page", notifier),
		recorder: recorder,
		logger:   logger.With().Str("page", "contact").Logger(),
	}
}

// Submit validates the form. Invalid input is stored in Errors and the form
// is left untouched. Valid input is logged, recorded, announced with a toast,
// and the form is reset. The returned error is only set when recording fails.
func (p *Page) Submit(ctx context.Context) (bool, error) {
	p.Errors = validate.ToMap(p.Form.Validate())
	if len(p.Errors) > 0 {
		p.logger.Debug().Int("errors", len(p.Errors)).Msg("contact form rejected")
		return false, nil
	}

	p.logger.Info().
		Str("name", p.Form.Name).
		Str("email", p.Form.Email).
		Str("message", p.Form.Message).
		Msg("form submitted")

	if p.recorder != nil {
		sub, err := p.recorder.Record(ctx, submission.KindContact, p.Form)
		if err != nil {
			return false, fmt.Errorf("record contact submission: %w", err)
		}
		p.logger.Debug().Str("reference", sub.Reference).Msg("contact submission recorded")
	}

	p.notifier.Notify(SuccessTitle, SuccessDescription)
	p.Reset()
	return true, nil
}

// Reset restores the initial empty form and clears errors.
func (p *Page) Reset() {
	p.Form = Form{}
	p.Errors = map[string]string{}
}
