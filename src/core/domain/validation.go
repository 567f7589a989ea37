package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field names used as keys in validation error maps.
const (
	FieldTitle    = "title"
	FieldSlug     = "slug"
	FieldContent  = "content"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldStatus   = "status"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationResult aggregates field-level validation errors.
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  map[string]string `json:"errors"`
}

// FieldResult is the outcome of validating a single form field.
type FieldResult struct {
	IsValid bool   `json:"is_valid"`
	Error   string `json:"error,omitempty"`
}

// ValidateTitle returns an error message, or "" when title is acceptable.
func ValidateTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "Title is required"
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "Title must be 200 characters or less"
	}
	return ""
}

func ValidateSlug(slug string) string {
	if strings.TrimSpace(slug) == "" {
		return "Slug is required"
	}
	if !IsValidSlug(slug) {
		return "Slug must contain only lowercase letters, numbers, and hyphens"
	}
	return ""
}

// ValidateContent only bounds the length; content is optional.
func ValidateContent(content string) string {
	if utf8.RuneCountInString(content) > MaxContentLength {
		return "Content must be 100,000 characters or less"
	}
	return ""
}

func ValidateEmail(email string) string {
	if strings.TrimSpace(email) == "" {
		return "Email is required"
	}
	if !emailPattern.MatchString(email) {
		return "Please enter a valid email address"
	}
	return ""
}

func ValidatePassword(password string) string {
	if password == "" {
		return "Password is required"
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return "Password must be at least 8 characters"
	}
	return ""
}

// ValidatePostInputs runs the title, slug and content validators and collects
// every failure keyed by field name.
func ValidatePostInputs(title, slug, content string) ValidationResult {
	errs := make(map[string]string)
	if msg := ValidateTitle(title); msg != "" {
		errs[FieldTitle] = msg
	}
	if msg := ValidateSlug(slug); msg != "" {
		errs[FieldSlug] = msg
	}
	if msg := ValidateContent(content); msg != "" {
		errs[FieldContent] = msg
	}
	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// ValidateCredentials checks a signup or login form.
func ValidateCredentials(email, password string) ValidationResult {
	errs := make(map[string]string)
	if msg := ValidateEmail(email); msg != "" {
		errs[FieldEmail] = msg
	}
	if msg := ValidatePassword(password); msg != "" {
		errs[FieldPassword] = msg
	}
	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// ValidateField validates one field by name, for interactive on-blur checks.
// Unknown field names are always valid.
func ValidateField(field, value string) FieldResult {
	var msg string
	switch field {
	case FieldTitle:
		msg = ValidateTitle(value)
	case FieldSlug:
		msg = ValidateSlug(value)
	case FieldContent:
		msg = ValidateContent(value)
	case FieldEmail:
		msg = ValidateEmail(value)
	case FieldPassword:
		msg = ValidatePassword(value)
	}
	return FieldResult{IsValid: msg == "", Error: msg}
}
