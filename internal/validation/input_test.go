package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"0501234567":      "0501234567",
		"050 123 4567":    "0501234567",
		"+966-50-1234567": "966501234567",
		"(050) 123.4567":  "0501234567",
		"abc":             "",
		"":                "",
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizePhone(raw), "raw %q", raw)
	}
}

func TestValidatePhone(t *testing.T) {
	phone, err := ValidatePhone("+966 50 123 4567")
	require.NoError(t, err)
	assert.Equal(t, "966501234567", phone)

	_, err = ValidatePhone("")
	assert.Error(t, err)

	_, err = ValidatePhone("12345")
	assert.Error(t, err)

	_, err = ValidatePhone("1234567890123456789")
	assert.Error(t, err)
}

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired("name", "A"))
	assert.Error(t, ValidateRequired("name", ""))
	assert.Error(t, ValidateRequired("name", "   "))
}

func TestValidateLength(t *testing.T) {
	assert.NoError(t, ValidateLength("title", "abc", 1, 10))
	assert.Error(t, ValidateLength("title", "", 1, 10))
	assert.Error(t, ValidateLength("title", "abcdefghijk", 1, 10))
	// Длина считается в рунах, не в байтах.
	assert.NoError(t, ValidateLength("title", "خدمات", 1, 5))
}
