// package validate contains the pure credential predicates used by both
// the register and login flows.
package validate

import (
	"regexp"
	"strings"

	"github.com/desertthunder/mixtape/internal/shared"
)

// emailPattern accepts the conventional local@domain.tld shape: no
// whitespace, a single @, and a dotted domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// specials is the fixed punctuation set a password must draw from.
const specials = "@$!%*?&#^()_+"

// Email checks that the address matches local@domain.tld.
func Email(email string) error {
	if !emailPattern.MatchString(email) {
		return shared.ErrInvalidEmail
	}
	return nil
}

// Password checks strength: minimum 8 characters, at least one lowercase
// letter, one uppercase letter, one digit, and one special character,
// with no characters outside those classes.
func Password(password string) error {
	if len(password) < 8 {
		return shared.ErrInvalidPassword
	}

	var lower, upper, digit, special bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		case strings.ContainsRune(specials, c):
			special = true
		default:
			return shared.ErrInvalidPassword
		}
	}

	if !lower || !upper || !digit || !special {
		return shared.ErrInvalidPassword
	}
	return nil
}

// Credentials validates an email/password pair together, returning the
// first failure.
func Credentials(email, password string) error {
	if err := Email(email); err != nil {
		return err
	}
	return Password(password)
}
