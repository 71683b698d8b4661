// Package contact validates contact form messages and simulates their delivery.
package contact

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Trimmed returns the form with surrounding whitespace removed from every field.
func (f Form) Trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate checks the trimmed form.
func (f Form) Validate() error {
	t := f.Trimmed()
	return validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required.Error("Name is required")),
		validation.Field(&t.Email,
			validation.Required.Error("Email is required"),
			validation.Match(emailPattern).Error("Email is invalid"),
		),
		validation.Field(&t.Subject, validation.Required.Error("Subject is required")),
		validation.Field(&t.Message, validation.Required.Error("Message is required")),
	)
}
