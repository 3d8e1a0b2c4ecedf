package domain

import (
	"strings"
	"unicode/utf8"

	domainerrors "catalog/internal/errors"
)

// NotNullOrEmpty fails when value is empty or whitespace only.
func NotNullOrEmpty(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return domainerrors.Validationf("%s should not be null or empty", field)
	}
	return nil
}

// MinLength fails when value has fewer than minLen characters.
func MinLength(value string, minLen int, field string) error {
	if utf8.RuneCountInString(value) < minLen {
		return domainerrors.Validationf("%s should have at least %d characters long", field, minLen)
	}
	return nil
}

// MaxLength fails when value has more than maxLen characters.
func MaxLength(value string, maxLen int, field string) error {
	if utf8.RuneCountInString(value) > maxLen {
		return domainerrors.Validationf("%s should be less or equal to %d characters long", field, maxLen)
	}
	return nil
}
