package models

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

const minPasswordLength = 8

// A short list of passwords seen far too often in breach dumps. Anything on
// it is rejected outright no matter how it scores otherwise.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwerty123":   {},
	"qwertyuiop":  {},
	"iloveyou":    {},
	"letmein1":    {},
	"welcome1":    {},
	"admin123":    {},
	"abc12345":    {},
	"sunshine":    {},
	"football":    {},
	"baseball":    {},
	"superman":    {},
	"trustno1":    {},
	"dragon123":   {},
	"monkey123":   {},
}

// ValidateRegistration checks registration input and returns field-level
// errors keyed by field name. An empty map means the input is acceptable.
func ValidateRegistration(email, password, firstName, lastName string) map[string]string {
	errs := make(map[string]string)

	if email == "" {
		errs["email"] = "Email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "Enter a valid email address"
	}

	if msg := validatePassword(password, email, firstName, lastName); msg != "" {
		errs["password"] = msg
	}

	if strings.TrimSpace(firstName) == "" {
		errs["first_name"] = "First name is required"
	}
	if strings.TrimSpace(lastName) == "" {
		errs["last_name"] = "Last name is required"
	}

	return errs
}

func validatePassword(password, email, firstName, lastName string) string {
	if len(password) < minPasswordLength {
		return fmt.Sprintf("Password must be at least %d characters long", minPasswordLength)
	}
	if isEntirelyNumeric(password) {
		return "Password cannot be entirely numeric"
	}
	if _, found := commonPasswords[strings.ToLower(password)]; found {
		return "Password is too common"
	}
	if similarToUserAttribute(password, email, firstName, lastName) {
		return "Password is too similar to your personal information"
	}
	return ""
}

func isEntirelyNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// similarToUserAttribute flags a password that contains, or is contained by,
// the user's own name or the local part of their email.
func similarToUserAttribute(password string, email, firstName, lastName string) bool {
	lower := strings.ToLower(password)

	attrs := []string{strings.ToLower(firstName), strings.ToLower(lastName)}
	if at := strings.Index(email, "@"); at > 0 {
		attrs = append(attrs, strings.ToLower(email[:at]))
	}

	for _, attr := range attrs {
		if len(attr) < 3 {
			continue
		}
		if strings.Contains(lower, attr) || strings.Contains(attr, lower) {
			return true
		}
	}
	return false
}
