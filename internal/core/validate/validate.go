// Package validate provides the field rules shared by the campusmart forms.
package validate

import (
	"errors"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/hay-kot/criterio"
)

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// Rule checks a single string value.
type Rule func(string) error

// Required rejects values that are empty after trimming whitespace.
func Required(msg string) Rule {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return errors.New(msg)
		}
		return nil
	}
}

// Email accepts values shaped like local@domain.tld.
func Email(v string) error {
	if !emailPattern.MatchString(v) {
		return errors.New("Invalid email format")
	}
	return nil
}

// Phone accepts exactly ten digits.
func Phone(v string) error {
	if !phonePattern.MatchString(v) {
		return errors.New("Invalid phone number format")
	}
	return nil
}

// Equals accepts only values identical to want.
func Equals(want, msg string) Rule {
	return func(v string) error {
		if v != want {
			return errors.New(msg)
		}
		return nil
	}
}

// Extension accepts empty values and paths ending in one of exts.
// Matching is case-insensitive; exts include the leading dot.
func Extension(msg string, exts ...string) Rule {
	return func(v string) error {
		if v == "" {
			return nil
		}
		if !slices.Contains(exts, strings.ToLower(filepath.Ext(v))) {
			return errors.New(msg)
		}
		return nil
	}
}

// All runs rules in order and returns the first failure.
func All(rules ...Rule) Rule {
	return func(v string) error {
		for _, r := range rules {
			if err := r(v); err != nil {
				return err
			}
		}
		return nil
	}
}

// Field runs rule against value and reports failures under field.
func Field(field, value string, rule Rule) error {
	return criterio.Run(field, value, (func(string) error)(rule))
}

// Checked reports msg under field unless checked is true.
func Checked(field string, checked bool, msg string) error {
	if checked {
		return nil
	}
	return criterio.NewFieldErrors(field, errors.New(msg))
}

// Collect combines per-field results into a single error.
func Collect(errs ...error) error {
	return criterio.ValidateStruct(errs...)
}

// ToMap flattens a validation error into field name -> message. Errors that
// do not carry field information are reported under "form".
func ToMap(err error) map[string]string {
	out := make(map[string]string)
	if err == nil {
		return out
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		out["form"] = err.Error()
		return out
	}

	for _, fe := range fieldErrs {
		if _, exists := out[fe.Field]; exists {
			continue
		}
		out[fe.Field] = fe.Err.Error()
	}
	return out
}
