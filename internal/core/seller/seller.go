// Package seller implements seller registration: the form, its fixed
// validation rules, and the state to city lookup.
package seller

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusmart/campusmart/internal/core/submission"
	"github.com/campusmart/campusmart/internal/core/toast"
	"github.com/campusmart/campusmart/internal/core/validate"
)

// Toast shown after a successful registration.
const (
	SuccessTitle       = "Registration Successful"
	SuccessDescription = "Your seller account has been created."
)

// Field names used as error-map keys.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldMobileNumber    = "mobileNumber"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldCountry         = "country"
	FieldState           = "state"
	FieldCity            = "city"
	FieldAddressLine1    = "addressLine1"
	FieldPinCode         = "pinCode"
	FieldInstituteName   = "instituteName"
	FieldProfilePicture  = "profilePicture"
	FieldTermsAccepted   = "termsAccepted"
)

// ProfilePictureExtensions are the accepted profile picture file types.
var ProfilePictureExtensions = []string{".jpg", ".jpeg", ".png"}

// Form holds the registration values.
type Form struct {
	FirstName       string
	LastName        string
	Email           string
	MobileNumber    string
	Password        string
	ConfirmPassword string
	Country         string
	State           string
	City            string
	AddressLine1    string
	PinCode         string
	InstituteName   string
	ProfilePicture  string // path to an image file, optional
	TermsAccepted   bool
}

// NewForm returns the initial form values.
func NewForm() Form {
	return Form{Country: Country}
}

// Validate applies the registration rules and returns criterio field errors.
// A field marked required reports a missing value before any format rule.
func (f Form) Validate() error {
	return validate.Collect(
		validate.Field(FieldFirstName, f.FirstName, validate.Required("First name is required")),
		validate.Field(FieldLastName, f.LastName, validate.Required("Last name is required")),
		validate.Field(FieldEmail, f.Email, validate.All(validate.Required("Email is required"), validate.Email)),
		validate.Field(FieldMobileNumber, f.MobileNumber, validate.All(validate.Required("Mobile number is required"), validate.Phone)),
		validate.Field(FieldPassword, f.Password, validate.Required("Password is required")),
		validate.Field(FieldConfirmPassword, f.ConfirmPassword, validate.All(
			validate.Required("Please confirm your password"),
			validate.Equals(f.Password, "Passwords do not match"),
		)),
		validate.Field(FieldAddressLine1, f.AddressLine1, validate.Required("Address is required")),
		validate.Field(FieldPinCode, f.PinCode, validate.Required("PIN code is required")),
		validate.Field(FieldInstituteName, f.InstituteName, validate.Required("Institute name is required")),
		validate.Field(FieldProfilePicture, f.ProfilePicture, validate.Extension(
			"Profile picture must be a .jpg, .jpeg, or .png file",
			ProfilePictureExtensions...,
		)),
		validate.Checked(FieldTermsAccepted, f.TermsAccepted, "You must accept the terms and conditions"),
	)
}

// record is the stored form of a registration. Passwords never leave the
// page in clear text.
type record struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	MobileNumber   string `json:"mobile_number"`
	PasswordHash   string `json:"password_hash"`
	Country        string `json:"country"`
	State          string `json:"state"`
	City           string `json:"city"`
	AddressLine1   string `json:"address_line1"`
	PinCode        string `json:"pin_code"`
	InstituteName  string `json:"institute_name"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	TermsAccepted  bool   `json:"terms_accepted"`
}

// Page is the registration page state.
type Page struct {
	Form   Form
	Errors map[string]string

	notifier   toast.Notifier
	recorder   submission.Recorder
	logger     zerolog.Logger
	bcryptCost int
}

// NewPage creates a registration page with the initial form. notifier is
// required; recorder may be nil.
func NewPage(notifier toast.Notifier, recorder submission.Recorder, logger zerolog.Logger) *Page {
	return &Page{
		Form:       NewForm(),
		Errors:     map[string]string{},
		notifier:   toast.Require("seller page", notifier),
		recorder:   recorder,
		logger:     logger.With().Str("page", "seller").Logger(),
		bcryptCost: bcrypt.DefaultCost,
	}
}

// AvailableCities returns the cities of the selected state.
func (p *Page) AvailableCities() []string {
	if p.Form.State == "" {
		return nil
	}
	return CitiesFor(p.Form.State)
}

// SetState selects a state and clears the city when it does not belong to
// the new state.
func (p *Page) SetState(state string) {
	p.Form.State = state
	if !slices.Contains(p.AvailableCities(), p.Form.City) {
		p.Form.City = ""
	}
}

// Submit validates the form. Invalid input is stored in Errors and the form
// is left untouched. Valid input is logged, recorded, announced with a toast,
// and the form is reset. The returned error is only set when recording fails.
func (p *Page) Submit(ctx context.Context) (bool, error) {
	p.Errors = validate.ToMap(p.Form.Validate())
	if len(p.Errors) > 0 {
		p.logger.Debug().Int("errors", len(p.Errors)).Msg("seller form rejected")
		return false, nil
	}

	p.logger.Info().
		Str("first_name", p.Form.FirstName).
		Str("last_name", p.Form.LastName).
		Str("email", p.Form.Email).
		Str("mobile_number", p.Form.MobileNumber).
		Str("state", p.Form.State).
		Str("city", p.Form.City).
		Str("institute_name", p.Form.InstituteName).
		Bool("profile_picture", p.Form.ProfilePicture != "").
		Msg("form submitted")

	if p.recorder != nil {
		rec, err := p.record()
		if err != nil {
			return false, err
		}
		sub, err := p.recorder.Record(ctx, submission.KindSeller, rec)
		if err != nil {
			return false, fmt.Errorf("record seller submission: %w", err)
		}
		p.logger.Debug().Str("reference", sub.Reference).Msg("seller submission recorded")
	}

	p.notifier.Notify(SuccessTitle, SuccessDescription)
	p.Reset()
	return true, nil
}

// Reset restores the initial form and clears errors.
func (p *Page) Reset() {
	p.Form = NewForm()
	p.Errors = map[string]string{}
}

func (p *Page) record() (record, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(p.Form.Password), p.bcryptCost)
	if err != nil {
		return record{}, fmt.Errorf("hash password: %w", err)
	}

	f := p.Form
	return record{
		FirstName:      f.FirstName,
		LastName:       f.LastName,
		Email:          f.Email,
		MobileNumber:   f.MobileNumber,
		PasswordHash:   string(hash),
		Country:        f.Country,
		State:          f.State,
		City:           f.City,
		AddressLine1:   f.AddressLine1,
		PinCode:        f.PinCode,
		InstituteName:  f.InstituteName,
		ProfilePicture: f.ProfilePicture,
		TermsAccepted:  f.TermsAccepted,
	}, nil
}
