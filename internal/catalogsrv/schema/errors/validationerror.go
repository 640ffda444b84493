// Package errors provides the validation error vocabulary for catalog
// input. Validation collects every failure in a request before
// reporting, so callers can fix all issues in one round trip.
package errors

import (
	"bytes"
	"strings"
)

// ValidationError represents an error that occurs during validation.
type ValidationError struct {
	Field  string // The field that caused the validation error.
	Value  any    // The value that caused the validation error.
	ErrStr string // The error message.
}

// Error allows ValidationError to satisfy the error interface.
func (ve ValidationError) Error() string {
	if len(ve.Field) > 0 {
		return ve.Field + ": " + ve.ErrStr
	}
	return ve.ErrStr
}

// ErrInvalidSchema is an error indicating the input could not be parsed.
var ErrInvalidSchema = ValidationError{
	Field:  "invalid input",
	Value:  "",
	ErrStr: "unable to parse request",
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

// Error allows ValidationErrors to satisfy the error interface.
func (ves ValidationErrors) Error() string {
	buff := bytes.NewBufferString("")

	for i := 0; i < len(ves); i++ {
		buff.WriteString(ves[i].Error())
		buff.WriteString("; ")
	}

	return strings.TrimSpace(buff.String())
}

// Strings returns one message per validation failure, in input order.
func (ves ValidationErrors) Strings() []string {
	out := make([]string, 0, len(ves))
	for _, ve := range ves {
		out = append(out, ve.Error())
	}
	return out
}

// InQuotes returns the string s surrounded by single quotes.
func InQuotes(s string) string {
	return "'" + s + "'"
}
