package validation

import (
	"bytes"
	"encoding/json"
	"strings"
)

// RegistrationPayload carries the raw JSON fields of a registration request.
// Fields stay undecoded so that absent, null, and wrongly-typed values are
// distinguishable and each maps to its own rejection reason.
type RegistrationPayload struct {
	Name         json.RawMessage
	Email        json.RawMessage
	Password     json.RawMessage
	IsInstructor json.RawMessage
}

func absent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// Email returns the normalized email address or the first rejection reason.
func Email(raw json.RawMessage) (string, error) {
	if absent(raw) {
		return "", ErrMissingEmail
	}

	var email string
	err := json.Unmarshal(raw, &email)
	if err != nil {
		return "", ErrInvalidEmailFormat
	}

	email = strings.TrimSpace(strings.ToLower(email))
	err = ValidateEmail(email)
	if err != nil {
		return "", err
	}

	return email, nil
}

// Name returns the trimmed display name or a rejection reason.
func Name(raw json.RawMessage) (string, error) {
	if absent(raw) {
		return "", ErrMissingName
	}

	var name string
	err := json.Unmarshal(raw, &name)
	if err != nil {
		return "", ErrInvalidNameType
	}

	err = ValidateName(name)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(name), nil
}

// Password returns the raw password or a rejection reason.
// Presence is checked before type so an explicit null reads as "missing".
func Password(raw json.RawMessage) (string, error) {
	if absent(raw) {
		return "", ErrInvalidPassword
	}

	var password string
	err := json.Unmarshal(raw, &password)
	if err != nil {
		return "", ErrInvalidPasswordType
	}

	err = ValidatePassword(password)
	if err != nil {
		return "", err
	}

	return password, nil
}

// RoleFlag returns the instructor flag or a rejection reason.
func RoleFlag(raw json.RawMessage) (bool, error) {
	if absent(raw) {
		return false, ErrMissingRoleFlag
	}

	var isInstructor bool
	err := json.Unmarshal(raw, &isInstructor)
	if err != nil {
		return false, ErrMissingRoleFlag
	}

	return isInstructor, nil
}
