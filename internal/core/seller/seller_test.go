package seller

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusmart/campusmart/internal/core/submission"
	"github.com/campusmart/campusmart/internal/core/toast"
	"github.com/campusmart/campusmart/internal/core/toast/toasttest"
)

type recorderFunc func(ctx context.Context, kind submission.Kind, payload any) (submission.Submission, error)

func (f recorderFunc) Record(ctx context.Context, kind submission.Kind, payload any) (submission.Submission, error) {
	return f(ctx, kind, payload)
}

func newPage(t *testing.T, rec submission.Recorder) (*Page, *toast.Store) {
	t.Helper()
	store, _ := toasttest.NewStore()
	p := NewPage(store, rec, zerolog.Nop())
	p.bcryptCost = bcrypt.MinCost
	return p, store
}

func validForm() Form {
	f := NewForm()
	f.FirstName = "Ana"
	f.LastName = "Rao"
	f.Email = "ana@example.com"
	f.MobileNumber = "9876543210"
	f.Password = "hunter22"
	f.ConfirmPassword = "hunter22"
	f.State = "Goa"
	f.City = "Panaji"
	f.AddressLine1 = "12 Beach Road"
	f.PinCode = "403001"
	f.InstituteName = "Goa University"
	f.TermsAccepted = true
	return f
}

func TestForm_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Form)
		want   map[string]string
	}{
		{
			name:   "valid",
			mutate: func(*Form) {},
			want:   map[string]string{},
		},
		{
			name:   "bad phone",
			mutate: func(f *Form) { f.MobileNumber = "12345" },
			want:   map[string]string{FieldMobileNumber: "Invalid phone number format"},
		},
		{
			name:   "terms not accepted",
			mutate: func(f *Form) { f.TermsAccepted = false },
			want:   map[string]string{FieldTermsAccepted: "You must accept the terms and conditions"},
		},
		{
			name:   "bad picture type",
			mutate: func(f *Form) { f.ProfilePicture = "me.gif" },
			want:   map[string]string{FieldProfilePicture: "Profile picture must be a .jpg, .jpeg, or .png file"},
		},
		{
			name:   "missing first name",
			mutate: func(f *Form) { f.FirstName = "  " },
			want:   map[string]string{FieldFirstName: "First name is required"},
		},
		{
			name:   "empty email reports required before format",
			mutate: func(f *Form) { f.Email = "" },
			want:   map[string]string{FieldEmail: "Email is required"},
		},
		{
			name:   "empty confirmation",
			mutate: func(f *Form) { f.ConfirmPassword = "" },
			want:   map[string]string{FieldConfirmPassword: "Please confirm your password"},
		},
		{
			name:   "state and city are optional",
			mutate: func(f *Form) { f.State, f.City = "", "" },
			want:   map[string]string{},
		},
		{
			name:   "good picture type",
			mutate: func(f *Form) { f.ProfilePicture = "me.PNG" },
			want:   map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newPage(t, nil)
			f := validForm()
			tt.mutate(&f)
			p.Form = f

			_, err := p.Submit(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Errors)
		})
	}
}

func TestPage_Submit_invalid_email(t *testing.T) {
	p, store := newPage(t, nil)
	p.Form.Email = "not-an-email"
	before := p.Form

	ok, err := p.Submit(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NotEmpty(t, p.Errors[FieldEmail])
	assert.Empty(t, store.Toasts())
	assert.Equal(t, before, p.Form)
}

func TestPage_Submit_blank_form_reports_every_required_field(t *testing.T) {
	p, store := newPage(t, nil)

	ok, err := p.Submit(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	for _, field := range []string{
		FieldFirstName, FieldLastName, FieldEmail, FieldMobileNumber, FieldPassword,
		FieldConfirmPassword, FieldAddressLine1, FieldPinCode, FieldInstituteName, FieldTermsAccepted,
	} {
		assert.NotEmpty(t, p.Errors[field], field)
	}
	assert.NotContains(t, p.Errors, FieldProfilePicture)
	assert.Empty(t, store.Toasts())
}

func TestPage_Submit_password_mismatch_only(t *testing.T) {
	p, store := newPage(t, nil)
	f := validForm()
	f.Password = "a"
	f.ConfirmPassword = "b"
	p.Form = f

	ok, err := p.Submit(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, map[string]string{FieldConfirmPassword: "Passwords do not match"}, p.Errors)
	assert.Empty(t, store.Toasts())
}

func TestPage_Submit_valid(t *testing.T) {
	p, store := newPage(t, nil)
	p.Form = validForm()

	ok, err := p.Submit(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	toasts := store.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, SuccessTitle, toasts[0].Title)
	assert.Equal(t, SuccessDescription, toasts[0].Description)

	assert.Equal(t, NewForm(), p.Form)
	assert.Equal(t, "India", p.Form.Country)
	assert.Empty(t, p.Errors)
}

func TestPage_Submit_records_hashed_password(t *testing.T) {
	var payload map[string]any
	rec := recorderFunc(func(_ context.Context, kind submission.Kind, v any) (submission.Submission, error) {
		assert.Equal(t, submission.KindSeller, kind)
		data, err := json.Marshal(v)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &payload))
		return submission.Submission{Reference: "REF"}, nil
	})

	p, _ := newPage(t, rec)
	p.Form = validForm()

	ok, err := p.Submit(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "ana@example.com", payload["email"])
	assert.NotContains(t, payload, "password")
	assert.NotContains(t, payload, "confirm_password")

	hash, _ := payload["password_hash"].(string)
	require.NotEmpty(t, hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter22")))
}

func TestPage_Submit_record_failure(t *testing.T) {
	rec := recorderFunc(func(context.Context, submission.Kind, any) (submission.Submission, error) {
		return submission.Submission{}, errors.New("db locked")
	})

	p, store := newPage(t, rec)
	p.Form = validForm()

	ok, err := p.Submit(context.Background())
	require.Error(t, err)
	assert.False(t, ok)
	assert.Empty(t, store.Toasts())
	assert.Equal(t, validForm(), p.Form)
}

func TestPage_SetState(t *testing.T) {
	p, _ := newPage(t, nil)

	assert.Empty(t, p.AvailableCities())

	p.SetState("Goa")
	assert.Equal(t, []string{"Panaji", "Vasco da Gama", "Mapusa", "Margao"}, p.AvailableCities())

	p.Form.City = "Margao"
	p.SetState("Kerala")
	assert.Equal(t, []string{"Thiruvananthapuram", "Kochi", "Kozhikode", "Kottayam", "Thrissur"}, p.AvailableCities())
	assert.Empty(t, p.Form.City, "city outside the new state should be cleared")
}

func TestPage_SetState_keeps_shared_city(t *testing.T) {
	p, _ := newPage(t, nil)

	// Chandigarh appears under both Haryana and Punjab.
	p.SetState("Haryana")
	p.Form.City = "Chandigarh"
	p.SetState("Punjab")

	assert.Equal(t, "Chandigarh", p.Form.City)
}

func TestNewPage_requires_notifier(t *testing.T) {
	assert.Panics(t, func() { NewPage(nil, nil, zerolog.Nop()) })
}
