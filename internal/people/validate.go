package people

import (
	"fmt"
	"strings"
)

const (
	MinAge = 1
	MaxAge = 120
)

// MissingFieldError reports a required text field that was empty after
// trimming. Field holds the display name ("first name", "city", ...).
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// InvalidAgeError reports an age outside the accepted range.
type InvalidAgeError struct {
	Age int
}

func (e *InvalidAgeError) Error() string {
	return fmt.Sprintf("age must be between %d and %d, got %d", MinAge, MaxAge, e.Age)
}

// Validate checks candidate field values before admission to a Store.
// Text fields are checked in display order so the first error reported
// matches the first offending form field.
func Validate(firstName, lastName string, age int, jobTitle, city, state string) error {
	fields := []struct {
		name  string
		value string
	}{
		{"first name", firstName},
		{"last name", lastName},
		{"job title", jobTitle},
		{"city", city},
		{"state", state},
	}
	for _, f := range fields {
		if trim(f.value) == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	if age < MinAge || age > MaxAge {
		return &InvalidAgeError{Age: age}
	}
	return nil
}

func trim(s string) string { return strings.TrimSpace(s) }
