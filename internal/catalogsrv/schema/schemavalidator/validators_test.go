package schemavalidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSlug(t *testing.T) {
	valid := []string{
		"python-full-stack",
		"java",
		"data-science-101",
		"a",
	}
	invalid := []string{
		"",
		"-leading-hyphen",
		"trailing-hyphen-",
		"Has-Upper",
		"has space",
		"has_underscore",
	}

	for _, s := range valid {
		assert.True(t, ValidateSlug(s), "expected %q to be valid", s)
	}
	for _, s := range invalid {
		assert.False(t, ValidateSlug(s), "expected %q to be invalid", s)
	}
}

func TestEnumValidators(t *testing.T) {
	type course struct {
		Category string `json:"category" validate:"categoryValidator"`
		Level    string `json:"level" validate:"courseLevelValidator"`
		Language string `json:"language" validate:"languageValidator"`
		Mode     string `json:"mode" validate:"modeValidator"`
	}

	good := course{
		Category: "CORE Programming",
		Level:    "Beginner",
		Language: "English",
		Mode:     "Online",
	}
	require.NoError(t, V().Struct(good))

	bad := course{
		Category: "Cooking",
		Level:    "Expert",
		Language: "Latin",
		Mode:     "Telepathy",
	}
	err := V().Struct(bad)
	require.Error(t, err)
}

func TestDateValidator(t *testing.T) {
	type s struct {
		Date string `json:"startDate" validate:"dateValidator"`
	}

	assert.NoError(t, V().Struct(s{Date: "2025-06-01"}))
	assert.NoError(t, V().Struct(s{Date: "2025-06-01T10:00:00Z"}))
	assert.Error(t, V().Struct(s{Date: "06/01/2025"}))
	assert.Error(t, V().Struct(s{Date: "2025-6-1"}))
	assert.Error(t, V().Struct(s{Date: "2025-13-45"}))
}
