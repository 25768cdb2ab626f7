package services

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/dmitrijs2005/localauth/internal/common"
)

// emailChar is any rune other than "@" and whitespace. RE2's \s is ASCII
// only, so the Unicode spaces, line separators and the BOM are listed too.
const emailChar = `[^@\s\v\x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}]`

// emailPattern accepts local@domain.tld: one "@", at least one "." after it,
// no whitespace anywhere.
var emailPattern = regexp.MustCompile(`^` + emailChar + `+@` + emailChar + `+\.` + emailChar + `+$`)

// ValidEmail reports whether email has the local@domain.tld shape. It does
// not normalise case.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validateLogin(email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}
	if !ValidEmail(email) {
		return fmt.Errorf("%w: invalid email format", common.ErrValidation)
	}
	return nil
}

func validateSignup(name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}
	if !ValidEmail(email) {
		return fmt.Errorf("%w: invalid email format", common.ErrValidation)
	}
	if utf8.RuneCountInString(password) < common.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, common.MinPasswordLength)
	}
	return nil
}

// CheckEmail returns the inline hint shown next to an email field, or ""
// when the value looks fine.
func CheckEmail(email string) string {
	if !ValidEmail(email) {
		return "Check your email"
	}
	return ""
}

// CheckPassword returns the inline hint shown next to a password field.
func CheckPassword(password string) string {
	if utf8.RuneCountInString(password) < common.MinPasswordLength {
		return fmt.Sprintf("Password must be at least %d chars", common.MinPasswordLength)
	}
	return ""
}
