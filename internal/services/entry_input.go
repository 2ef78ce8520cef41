package services

import (
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/joydairy/internal/models"
)

type EntryInput struct {
	Gratitude     string
	Manifestation string
	Reflection    string
}

func NormalizeEntryInput(input EntryInput) (EntryInput, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{name: "gratitude", value: &input.Gratitude},
		{name: "manifestation", value: &input.Manifestation},
		{name: "reflection", value: &input.Reflection},
	}

	for _, field := range fields {
		*field.value = strings.TrimSpace(*field.value)
		if *field.value == "" {
			return input, newValidationError(field.name, "%s is required", field.name)
		}
		if utf8.RuneCountInString(*field.value) > models.MaxEntryFieldLength {
			return input, newValidationError(field.name, "%s must be at most %d characters", field.name, models.MaxEntryFieldLength)
		}
	}
	return input, nil
}
