package utils

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestSanitizeValidationErrorEmail(t *testing.T) {
	// Simulate a validator.ValidationErrors for an email field
	validate := validator.New()

	type TestReq struct {
		Email string `validate:"required,email"`
	}

	err := validate.Struct(TestReq{Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation error for invalid email")
	}

	msg := SanitizeValidationError(err)
	if !strings.Contains(msg, "email") {
		t.Errorf("expected error message to mention email, got: %s", msg)
	}
	if !strings.Contains(msg, "valid email address") {
		t.Errorf("expected user-friendly email error, got: %s", msg)
	}
}

func TestSanitizeValidationErrorRequired(t *testing.T) {
	validate := validator.New()

	type TestReq struct {
		Name     string `validate:"required"`
		Password string `validate:"required,min=6"`
	}

	err := validate.Struct(TestReq{})
	if err == nil {
		t.Fatal("expected validation error for missing required fields")
	}

	msg := SanitizeValidationError(err)
	if !strings.Contains(msg, "required") {
		t.Errorf("expected error message to mention 'required', got: %s", msg)
	}
}

func TestSanitizeValidationErrorNilReturnsEmpty(t *testing.T) {
	msg := SanitizeValidationError(nil)
	if msg != "" {
		t.Errorf("expected empty string for nil error, got: %s", msg)
	}
}

func TestSanitizeValidationErrorMinLength(t *testing.T) {
	validate := validator.New()

	type TestReq struct {
		Password string `validate:"required,min=6"`
	}

	err := validate.Struct(TestReq{Password: "abc"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := SanitizeValidationError(err)
	if !strings.Contains(msg, "at least") {
		t.Errorf("expected min length message, got: %s", msg)
	}
}

func TestSanitizeValidationErrorOneOf(t *testing.T) {
	validate := validator.New()

	type TestReq struct {
		Role string `validate:"required,oneof=user store-owner"`
	}

	err := validate.Struct(TestReq{Role: "admin"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := SanitizeValidationError(err)
	if !strings.Contains(msg, "one of") {
		t.Errorf("expected oneof message, got: %s", msg)
	}
}

func TestValidCategory(t *testing.T) {
	for category := range StoreCategories {
		if !ValidCategory(category) {
			t.Errorf("expected category %s to be valid", category)
		}
	}
}

func TestValidCategoryRejectsUnknown(t *testing.T) {
	for _, category := range []string{"", "groceries", "Restaurant", "RETAIL"} {
		if ValidCategory(category) {
			t.Errorf("expected category %q to be invalid", category)
		}
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{"+1234567890", "1234567890", "+447911123456"}
	for _, phone := range valid {
		if !ValidPhone(phone) {
			t.Errorf("expected phone %q to be valid", phone)
		}
	}
}

func TestValidPhoneRejectsMalformed(t *testing.T) {
	invalid := []string{"", "0123456789", "+0123", "phone", "+12345678901234567"}
	for _, phone := range invalid {
		if ValidPhone(phone) {
			t.Errorf("expected phone %q to be invalid", phone)
		}
	}
}

func TestValidImageURL(t *testing.T) {
	valid := []string{
		"https://example.com/photo.jpg",
		"http://example.com/photo.jpeg",
		"https://cdn.example.com/a/b/c.PNG",
		"https://example.com/banner.webp",
		"https://example.com/anim.gif",
	}
	for _, url := range valid {
		if !ValidImageURL(url) {
			t.Errorf("expected url %q to be valid", url)
		}
	}
}

func TestValidImageURLRejectsMalformed(t *testing.T) {
	invalid := []string{
		"",
		"ftp://example.com/photo.jpg",
		"https://example.com/document.pdf",
		"example.com/photo.jpg",
		"https://example.com/photo",
	}
	for _, url := range invalid {
		if ValidImageURL(url) {
			t.Errorf("expected url %q to be invalid", url)
		}
	}
}
