// package validate contains the pure format-validation rules for form fields.
//
// Rules are synchronous and side-effect free: given a raw string they return
// a [Verdict]. Fields whose final validity depends on a server-side
// uniqueness check (username, email, program title) never reach
// StatusSuccess here; their rules yield StatusNone on a format pass and the
// availability check owns the promotion to success. Fields without a
// uniqueness constraint (name, password) reach StatusSuccess directly.
package validate

import (
	"fmt"
	"regexp"

	"github.com/trainpartner/tpx/internal/models"
)

// Field length limits, mirrored from the backend's constraints.
const (
	NameMaxLength = 40

	UsernameMinLength = 3
	UsernameMaxLength = 15

	EmailMaxLength = 40

	PasswordMinLength = 6
	PasswordMaxLength = 20

	ProgramTitleMinLength = 3
	ProgramTitleMaxLength = 15
)

// User-facing messages for remote and top-level failures.
const (
	DuplicateUsername     = "Username is already taken"
	DuplicateEmail        = "Email is already registered"
	DuplicateProgramTitle = "You already have such titled program"
	BadCredentials        = "Your username or password is incorrect. Please try again!"
	Undefined             = "Sorry, something went wrong. Please try again!"
	SignUpSuccess         = "You are successfully registered. Please login to continue!"
)

var emailPattern = regexp.MustCompile(`[^@ ]+@[^@ ]+\.[^@ ]+`)

// Rule is a format validator for a single field.
type Rule func(value string) Verdict

// Verdict is the outcome of a format rule. Message is set only on error.
type Verdict struct {
	Status  models.ValidateStatus
	Message string
}

// TooShort builds the under-minimum-length message for an item.
func TooShort(item string, min int) string {
	return fmt.Sprintf("%s is too short (minimum %d symbols needed)", item, min)
}

// TooLong builds the over-maximum-length message for an item.
func TooLong(item string, max int) string {
	return fmt.Sprintf("%s is too long (maximum %d symbols allowed)", item, max)
}

// Empty builds the empty-value message for an item.
func Empty(item string) string {
	return fmt.Sprintf("%s should not be empty", item)
}

// NotValid builds the malformed-value message for an item.
func NotValid(item string) string {
	return fmt.Sprintf("%s not valid", item)
}

// Required builds the missing-input message for an item.
func Required(item string) string {
	return fmt.Sprintf("Please input %s!", item)
}

// length applies min/max bounds. pass is the status granted when the bounds
// hold: StatusSuccess for standalone fields, StatusNone for fields that
// still need an availability check.
func length(value, item string, min, max int, pass models.ValidateStatus) Verdict {
	if len(value) < min {
		return Verdict{Status: models.StatusError, Message: TooShort(item, min)}
	}
	if len(value) > max {
		return Verdict{Status: models.StatusError, Message: TooLong(item, max)}
	}
	return Verdict{Status: pass}
}

// Name validates the display name: at most NameMaxLength symbols.
func Name(value string) Verdict {
	return length(value, "Name", 0, NameMaxLength, models.StatusSuccess)
}

// Username validates username length. A pass is neutral; only the
// availability check may mark the field successful.
func Username(value string) Verdict {
	return length(value, "Username", UsernameMinLength, UsernameMaxLength, models.StatusNone)
}

// Email validates the email shape (local@domain.tld) and length. A pass is
// neutral pending the availability check.
func Email(value string) Verdict {
	if value == "" {
		return Verdict{Status: models.StatusError, Message: Empty("Email")}
	}
	if !emailPattern.MatchString(value) {
		return Verdict{Status: models.StatusError, Message: NotValid("Email")}
	}
	return length(value, "Email", 0, EmailMaxLength, models.StatusNone)
}

// Password validates password length.
func Password(value string) Verdict {
	return length(value, "Password", PasswordMinLength, PasswordMaxLength, models.StatusSuccess)
}

// ProgramTitle validates program title length. A pass is neutral pending the
// per-program availability check.
func ProgramTitle(value string) Verdict {
	return length(value, "Program title", ProgramTitleMinLength, ProgramTitleMaxLength, models.StatusNone)
}
