package models

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/voyage/internal/common"
)

const (
	MinPasswordLength = 6
	MinNameLength     = 2
)

// ValidateEmail accepts a bare address such as "arjun@example.com".
// Display-name forms ("Arjun <arjun@example.com>") are rejected.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: please enter a valid email", common.ErrValidation)
	}
	return nil
}

func ValidatePassword(password []byte) error {
	if utf8.RuneCount(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, MinPasswordLength)
	}
	return nil
}

func ValidateName(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < MinNameLength {
		return fmt.Errorf("%w: name must be at least %d characters", common.ErrValidation, MinNameLength)
	}
	return nil
}
