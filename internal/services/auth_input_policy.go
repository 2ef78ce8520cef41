package services

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	MaxUserNameLength = 100
	MinPasswordLength = 6
)

type RegistrationInput struct {
	Name     string
	Email    string
	Password string
}

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeRegistrationInput(input RegistrationInput) (RegistrationInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return input, newValidationError("name", "name is required")
	}
	if utf8.RuneCountInString(input.Name) > MaxUserNameLength {
		return input, newValidationError("name", "name must be at most %d characters", MaxUserNameLength)
	}

	email := NormalizeAuthEmail(input.Email)
	if email == "" {
		return input, newValidationError("email", "please enter a valid email")
	}
	input.Email = email

	if err := ValidatePasswordStrength(input.Password); err != nil {
		return input, err
	}
	return input, nil
}

func ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return newValidationError("password", "password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return "", "", newValidationError("email", "please enter a valid email")
	}
	if passwordRaw == "" {
		return "", "", newValidationError("password", "password is required")
	}
	return email, passwordRaw, nil
}
