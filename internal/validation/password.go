package validation

// ValidatePassword validates the raw password before hashing
func ValidatePassword(password string) error {
	if password == "" {
		return ErrInvalidPassword
	}

	// Maximum length: 72 bytes (bcrypt limitation)
	// bcrypt rejects passwords longer than 72 bytes
	if len(password) > 72 {
		return newError("password must not exceed 72 characters")
	}

	return nil
}
