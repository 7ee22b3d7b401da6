package form

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validator checks a field's string value.
type Validator interface {
	// Validate returns nil if value is valid, or a ValidationError.
	Validate(value string) error
}

// ValidatorFunc is a function that implements Validator.
type ValidatorFunc func(value string) error

func (f ValidatorFunc) Validate(value string) error {
	return f(value)
}

// ValidationError represents a validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// ----------------------------------------------------------------------------
// String Validators
// ----------------------------------------------------------------------------

// Required validates that the value is non-blank.
func Required(msg string) Validator {
	if msg == "" {
		msg = "This field is required"
	}
	return ValidatorFunc(func(value string) error {
		if strings.TrimSpace(value) == "" {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// MinLength validates that a string has at least n characters.
func MinLength(n int, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf("Must be at least %d characters", n)
	}
	return ValidatorFunc(func(value string) error {
		if value == "" {
			return nil // Let Required handle empty values
		}
		if utf8.RuneCountInString(value) < n {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// MaxLength validates that a string has at most n characters.
func MaxLength(n int, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf("Must be at most %d characters", n)
	}
	return ValidatorFunc(func(value string) error {
		if utf8.RuneCountInString(value) > n {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// Pattern validates that a string matches the given regular expression.
func Pattern(pattern string, msg string) Validator {
	re := regexp.MustCompile(pattern)
	if msg == "" {
		msg = "Invalid format"
	}
	return ValidatorFunc(func(value string) error {
		if value == "" {
			return nil
		}
		if !re.MatchString(value) {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// emailPattern requires a local part, an @ and a dotted domain ending in at
// least two letters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email validates that the value is a valid email address.
func Email(msg string) Validator {
	if msg == "" {
		msg = "Invalid email address"
	}
	return ValidatorFunc(func(value string) error {
		if value == "" {
			return nil
		}
		if !emailPattern.MatchString(value) {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// Custom wraps a predicate. ok reports whether value is valid; empty values
// are passed through to the predicate unchanged.
func Custom(ok func(value string) bool, msg string) Validator {
	if msg == "" {
		msg = "Invalid value"
	}
	return ValidatorFunc(func(value string) error {
		if !ok(value) {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// Validate runs validators in order and returns the first failure.
func Validate(value string, validators ...Validator) error {
	for _, v := range validators {
		if err := v.Validate(value); err != nil {
			return err
		}
	}
	return nil
}

// HasError is the error-flag predicate for a field. An empty value has not
// been filled in yet and is never flagged.
func HasError(value string, validators ...Validator) bool {
	if value == "" {
		return false
	}
	return Validate(value, validators...) != nil
}
