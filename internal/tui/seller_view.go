package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/campusmart/campusmart/internal/core/seller"
	"github.com/campusmart/campusmart/internal/core/styles"
	"github.com/campusmart/campusmart/internal/core/submission"
	"github.com/campusmart/campusmart/internal/core/toast"
	"github.com/campusmart/campusmart/internal/tui/components/form"
)

const (
	sellerIntro            = "Register to start selling your items on campusmart."
	cityPlaceholder        = "Select a city"
	cityPlaceholderNoState = "Select a state first"
)

// SellerView binds the registration page to a form dialog. The city options
// follow the chosen state.
type SellerView struct {
	page   *seller.Page
	dialog *form.Dialog
	frame  formFrame
	logger zerolog.Logger

	firstName      *form.TextField
	lastName       *form.TextField
	email          *form.TextField
	mobileNumber   *form.TextField
	password       *form.TextField
	confirm        *form.TextField
	country        *form.TextField
	state          *form.SelectFormField
	city           *form.SelectFormField
	addressLine1   *form.TextField
	pinCode        *form.TextField
	instituteName  *form.TextField
	profilePicture *form.TextField
	terms          *form.CheckboxField

	failure string
}

// NewSellerView builds the registration form. n must not be nil.
func NewSellerView(n toast.Notifier, recorder submission.Recorder, logger zerolog.Logger) *SellerView {
	page := seller.NewPage(n, recorder, logger)

	v := &SellerView{
		page:           page,
		frame:          newFormFrame(sellerIntro),
		logger:         logger.With().Str("component", "seller_view").Logger(),
		firstName:      form.NewTextField("First Name", "", ""),
		lastName:       form.NewTextField("Last Name", "", ""),
		email:          form.NewTextField("Email", "you@example.com", ""),
		mobileNumber:   form.NewTextField("Mobile Number", "10 digits", ""),
		password:       form.NewPasswordField("Password", ""),
		confirm:        form.NewPasswordField("Confirm Password", ""),
		country:        form.NewReadOnlyField("Country", page.Form.Country),
		state:          form.NewSelectFormField("State", "Select a state", seller.States()),
		city:           form.NewSelectFormField("City", cityPlaceholderNoState, nil),
		addressLine1:   form.NewTextField("Address Line 1", "", ""),
		pinCode:        form.NewTextField("Pin Code", "", ""),
		instituteName:  form.NewTextField("Institute Name", "", ""),
		profilePicture: form.NewTextField("Profile Picture", "path to .jpg, .jpeg or .png (optional)", ""),
		terms:          form.NewCheckboxField("Terms", "I agree to the terms and conditions"),
	}

	v.state.OnChange(v.setState)
	v.city.OnChange(func(city string) { v.page.Form.City = city })

	v.dialog = form.NewDialog("Seller Registration",
		[]form.Field{
			v.firstName, v.lastName, v.email, v.mobileNumber,
			v.password, v.confirm, v.country, v.state, v.city,
			v.addressLine1, v.pinCode, v.instituteName, v.profilePicture,
			v.terms,
		},
		[]string{
			seller.FieldFirstName, seller.FieldLastName, seller.FieldEmail, seller.FieldMobileNumber,
			seller.FieldPassword, seller.FieldConfirmPassword, seller.FieldCountry, seller.FieldState, seller.FieldCity,
			seller.FieldAddressLine1, seller.FieldPinCode, seller.FieldInstituteName, seller.FieldProfilePicture,
			seller.FieldTermsAccepted,
		},
	)
	return v
}

func (v *SellerView) setState(state string) {
	v.page.SetState(state)
	v.syncCities()
}

func (v *SellerView) syncCities() {
	v.city.SetOptions(v.page.AvailableCities())
	v.city.SetValue(v.page.Form.City)
	if v.page.Form.State == "" {
		v.city.SetPlaceholder(cityPlaceholderNoState)
	} else {
		v.city.SetPlaceholder(cityPlaceholder)
	}
}

// Update routes msg to the dialog. back reports that the user left the page.
func (v *SellerView) Update(ctx context.Context, msg tea.Msg) (cmd tea.Cmd, back bool) {
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

func (v *SellerView) submit(ctx context.Context) tea.Cmd {
	f := &v.page.Form
	f.FirstName = form.StringValue(v.firstName)
	f.LastName = form.StringValue(v.lastName)
	f.Email = form.StringValue(v.email)
	f.MobileNumber = form.StringValue(v.mobileNumber)
	f.Password = form.StringValue(v.password)
	f.ConfirmPassword = form.StringValue(v.confirm)
	f.State = form.StringValue(v.state)
	f.City = form.StringValue(v.city)
	f.AddressLine1 = form.StringValue(v.addressLine1)
	f.PinCode = form.StringValue(v.pinCode)
	f.InstituteName = form.StringValue(v.instituteName)
	f.ProfilePicture = form.StringValue(v.profilePicture)
	f.TermsAccepted = form.BoolValue(v.terms)

	ok, err := v.page.Submit(ctx)
	if err != nil {
		v.logger.Error().Err(err).Msg("seller submit failed")
		v.failure = "Could not complete registration: " + err.Error()
		return nil
	}

	v.failure = ""
	if !ok {
		v.dialog.SetErrors(v.page.Errors)
		return nil
	}

	cmd := v.dialog.Reset()
	v.syncCities()
	return cmd
}

// Page exposes the page state.
func (v *SellerView) Page() *seller.Page { return v.page }

func (v *SellerView) SetSize(width, height int) {
	v.frame.SetSize(width, height)
}

func (v *SellerView) View() string {
	status := statusLine(v.failure)
	if status == "" {
		status = styles.TextMutedStyle.Render("ctrl+t: terms and conditions")
	}
	return v.frame.render(v.dialog, status)
}
