package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Константы валидации
const (
	MaxNameLength               = 100
	MaxServiceTypeLength        = 100
	MaxCityLength               = 100
	MinPhoneDigits              = 9
	MaxPhoneDigits              = 15
	MaxListingTitleLength       = 200
	MaxListingDescriptionLength = 5000
)

// NormalizePhone убирает из номера всё, кроме цифр.
// Та же нормализация применяется при записи и при чтении,
// иначе поиск по паре (ref, phone) не сойдётся.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePhone нормализует телефон и проверяет его длину.
func ValidatePhone(raw string) (string, error) {
	phone := NormalizePhone(raw)
	if phone == "" {
		return "", fmt.Errorf("phone is required")
	}
	if len(phone) < MinPhoneDigits || len(phone) > MaxPhoneDigits {
		return "", fmt.Errorf("phone must contain %d to %d digits", MinPhoneDigits, MaxPhoneDigits)
	}
	return phone, nil
}

// ValidateRequired проверяет, что поле непустое после обрезки пробелов.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateLength проверяет длину строки в рунах.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s must be at least %d characters", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s must be at most %d characters", fieldName, max)
	}
	return nil
}
