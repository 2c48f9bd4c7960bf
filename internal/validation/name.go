package validation

import (
	"strings"
)

// ValidateName validates the account display name
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return ErrMissingName
	}

	if len(trimmed) > 100 {
		return newError("name is too long (max 100 characters)")
	}

	return nil
}
