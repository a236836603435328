package validator

import (
	"net/mail"
	"strings"
)

// ValidationErrors collects every failing field so the client gets the
// whole list in one response instead of the first violation.
type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func ValidateRegister(email, password, firstName, lastName string) ValidationErrors {
	errs := make(ValidationErrors)

	validateEmail(email, errs)
	validatePassword(password, errs)
	validateName("firstName", "First name", firstName, errs)
	validateName("lastName", "Last name", lastName, errs)

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	validateEmail(email, errs)
	validatePassword(password, errs)

	return errs
}

func ValidateMessage(content string) ValidationErrors {
	errs := make(ValidationErrors)

	if content == "" {
		errs.Add("content", "Message content is required")
	} else if len(content) < 5 {
		errs.Add("content", "Message must be at least 5 characters long")
	}

	return errs
}

func validateEmail(email string, errs ValidationErrors) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Please enter a valid email address")
	}
}

func validatePassword(password string, errs ValidationErrors) {
	if password == "" {
		errs.Add("password", "Password is required")
	} else if len(password) < 6 {
		errs.Add("password", "Password must be at least 6 characters long")
	}
}

func validateName(field, label, value string, errs ValidationErrors) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		errs.Add(field, label+" is required")
	case len(value) < 2:
		errs.Add(field, label+" must be at least 2 characters long")
	case len(value) > 50:
		errs.Add(field, label+" cannot exceed 50 characters")
	}
}
