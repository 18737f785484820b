package domain

import "strings"

// Field validation reasons for the contact form. They are stable codes: the
// view layer owns the translation into user-visible messages.
const (
	ReasonRequired     = "required"
	ReasonOnlyLetters  = "only_letters"
	ReasonInvalidEmail = "invalid_email"
)

// ContactForm holds the raw contact form input as submitted.
type ContactForm struct {
	FirstName string
	LastName  string
	Email     string
	Country   string
	Message   string
}

// FieldError ties a validation reason to the field that failed.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Validate checks every field and returns the full list of failures, one per
// field at most, in form order. An empty result means the form is valid.
// Name fields are checked first for presence, then for the
// letters-and-spaces rule.
func (f ContactForm) Validate() []FieldError {
	var errs []FieldError

	errs = appendNameError(errs, "nombre", f.FirstName)
	errs = appendNameError(errs, "apellido", f.LastName)

	email := strings.TrimSpace(f.Email)
	switch {
	case email == "":
		errs = append(errs, FieldError{Field: "email", Reason: ReasonRequired})
	case !IsValidEmail(email):
		errs = append(errs, FieldError{Field: "email", Reason: ReasonInvalidEmail})
	}

	if strings.TrimSpace(f.Country) == "" {
		errs = append(errs, FieldError{Field: "pais", Reason: ReasonRequired})
	}

	return errs
}

func appendNameError(errs []FieldError, field, value string) []FieldError {
	v := strings.TrimSpace(value)
	if v == "" {
		return append(errs, FieldError{Field: field, Reason: ReasonRequired})
	}
	if !IsOnlyLettersAndSpaces(v) {
		return append(errs, FieldError{Field: field, Reason: ReasonOnlyLetters})
	}
	return errs
}
