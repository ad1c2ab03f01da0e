package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StoreCategories is the set of allowed store categories.
var StoreCategories = map[string]bool{
	"restaurant":    true,
	"retail":        true,
	"service":       true,
	"entertainment": true,
	"health":        true,
	"education":     true,
	"other":         true,
}

var (
	phoneRegex    = regexp.MustCompile(`^[\+]?[1-9][\d]{0,15}$`)
	imageURLRegex = regexp.MustCompile(`^https?://.+\.(jpg|jpeg|png|gif|webp)$`)
)

// ValidCategory reports whether category is one of the allowed store categories.
func ValidCategory(category string) bool {
	return StoreCategories[category]
}

// ValidPhone reports whether phone looks like a valid phone number
// (optional leading +, no leading zero, up to 16 digits).
func ValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidImageURL reports whether url is an http(s) URL pointing at a
// supported image format.
func ValidImageURL(url string) bool {
	return imageURLRegex.MatchString(strings.ToLower(url))
}

// SanitizeValidationError takes a validator error and returns a user-friendly message
// without leaking internal Go struct names.
func SanitizeValidationError(err error) string {
	if err == nil {
		return ""
	}

	// Try to cast to validator.ValidationErrors
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// If it's not a validation error, return a generic message
		return "Invalid request body"
	}

	// Build user-friendly error messages from field-level errors
	var messages []string
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email address", field))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}

	if len(messages) == 0 {
		return "Invalid request body"
	}

	return strings.Join(messages, "; ")
}
