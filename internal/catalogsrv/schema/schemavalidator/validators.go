package schemavalidator

import (
	"regexp"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"

	"campussrv/internal/catalogsrv/catcommon"
)

// categoryValidator checks if the given value is a known course category.
func categoryValidator(fl validator.FieldLevel) bool {
	return catcommon.Category(fl.Field().String()).IsValid()
}

// courseLevelValidator checks if the given value is a known course level.
func courseLevelValidator(fl validator.FieldLevel) bool {
	return catcommon.Level(fl.Field().String()).IsValid()
}

// languageValidator checks if the given value is a known course language.
func languageValidator(fl validator.FieldLevel) bool {
	return catcommon.Language(fl.Field().String()).IsValid()
}

// modeValidator checks if the given value is a known delivery mode.
func modeValidator(fl validator.FieldLevel) bool {
	return catcommon.Mode(fl.Field().String()).IsValid()
}

const slugRegex = `^[a-z0-9]([-a-z0-9]*[a-z0-9])?$`
const slugMaxLength = 120

var slugRe = regexp.MustCompile(slugRegex)

// slugValidator checks if the given value follows our URL slug convention.
func slugValidator(fl validator.FieldLevel) bool {
	return ValidateSlug(fl.Field().String())
}

// ValidateSlug reports whether s is a well-formed URL slug.
func ValidateSlug(s string) bool {
	if len(s) == 0 || len(s) > slugMaxLength {
		return false
	}
	return slugRe.MatchString(s)
}

const dateRegex = `^\d{4}-\d{2}-\d{2}$`

var dateRe = regexp.MustCompile(dateRegex)

// dateValidator checks if the given value is a real calendar date,
// either ISO date-only or a full RFC 3339 timestamp.
func dateValidator(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if dateRe.MatchString(s) {
		_, err := time.Parse("2006-01-02", s)
		return err == nil
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func ValidateCategory(s string) bool {
	categories := catcommon.Categories()
	return slices.ContainsFunc(categories, func(c catcommon.Category) bool {
		return string(c) == s
	})
}

func init() {
	V().RegisterValidation("categoryValidator", categoryValidator)
	V().RegisterValidation("courseLevelValidator", courseLevelValidator)
	V().RegisterValidation("languageValidator", languageValidator)
	V().RegisterValidation("modeValidator", modeValidator)
	V().RegisterValidation("slugValidator", slugValidator)
	V().RegisterValidation("dateValidator", dateValidator)
}
