package errors

import (
	"fmt"
	"strings"
)

func ErrMissingRequiredAttribute(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "missing required attribute",
	}
}

func ErrInvalidEnumValue(attr string, allowed []string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "invalid value; must be one of: " + strings.Join(allowed, ", "),
	}
}

func ErrNegativeValue(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "must not be negative",
	}
}

func ErrDiscountNotBelowPrice(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "discounted price must be less than the price",
	}
}

func ErrExceedsMaxLength(attr string, max int, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: fmt.Sprintf("exceeds maximum length of %d characters", max),
	}
}

func ErrInvalidDate(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "invalid date; expected YYYY-MM-DD",
	}
}

func ErrInvalidYear(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "invalid year",
	}
}

// ErrInvalidModuleEntry reports a structural failure of one entry in the
// curriculum modules array. The field carries the entry index so a
// caller can locate the offending module.
func ErrInvalidModuleEntry(attr string, index int, reason string, value ...any) ValidationError {
	return ValidationError{
		Field:  fmt.Sprintf("%s[%d]", attr, index),
		Value:  value,
		ErrStr: reason,
	}
}

func ErrInvalidModulesStructure(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "must be an array of module objects",
	}
}

func ErrInvalidNameFormat(attr string, value ...string) ValidationError {
	var errStr string
	if len(value) == 0 {
		errStr = "invalid name format; allowed characters: [a-z0-9-]"
	} else {
		errStr = "invalid name format " + InQuotes(value[0]) + "; allowed characters: [a-z0-9-]"
	}
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: errStr,
	}
}

func ErrValidationFailed(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "validation failed",
	}
}
