package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTitle(t *testing.T) {
	assert.Equal(t, "Title is required", ValidateTitle(""))
	assert.Equal(t, "Title is required", ValidateTitle("   "))
	assert.Equal(t, "", ValidateTitle("Hello"))
	assert.Equal(t, "", ValidateTitle(strings.Repeat("é", MaxTitleLength)))
	assert.Equal(t, "Title must be 200 characters or less", ValidateTitle(strings.Repeat("a", MaxTitleLength+1)))
}

func TestValidateSlug(t *testing.T) {
	assert.Equal(t, "Slug is required", ValidateSlug(""))
	assert.Equal(t, "Slug must contain only lowercase letters, numbers, and hyphens", ValidateSlug("Bad Slug"))
	assert.Equal(t, "", ValidateSlug("good-slug"))
}

func TestValidateContent(t *testing.T) {
	assert.Equal(t, "", ValidateContent(""))
	assert.Equal(t, "", ValidateContent(strings.Repeat("x", MaxContentLength)))
	assert.Equal(t, "Content must be 100,000 characters or less", ValidateContent(strings.Repeat("x", MaxContentLength+1)))
}

func TestValidateEmail(t *testing.T) {
	assert.Equal(t, "Email is required", ValidateEmail(""))
	assert.Equal(t, "Please enter a valid email address", ValidateEmail("nope"))
	assert.Equal(t, "Please enter a valid email address", ValidateEmail("a@b"))
	assert.Equal(t, "", ValidateEmail("writer@example.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.Equal(t, "Password is required", ValidatePassword(""))
	assert.Equal(t, "Password must be at least 8 characters", ValidatePassword("short"))
	assert.Equal(t, "", ValidatePassword("long enough"))
}

func TestValidatePostInputs(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		res := ValidatePostInputs("Title", "title", "")
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Errors)
	})

	t.Run("collects every failure", func(t *testing.T) {
		res := ValidatePostInputs("", "Not Valid", strings.Repeat("x", MaxContentLength+1))
		assert.False(t, res.IsValid)
		assert.Equal(t, map[string]string{
			FieldTitle:   "Title is required",
			FieldSlug:    "Slug must contain only lowercase letters, numbers, and hyphens",
			FieldContent: "Content must be 100,000 characters or less",
		}, res.Errors)
	})
}

func TestValidateCredentials(t *testing.T) {
	res := ValidateCredentials("bad", "123")
	assert.False(t, res.IsValid)
	assert.Len(t, res.Errors, 2)

	assert.True(t, ValidateCredentials("a@b.co", "password1").IsValid)
}

func TestValidateField(t *testing.T) {
	assert.Equal(t, FieldResult{IsValid: false, Error: "Title is required"}, ValidateField(FieldTitle, ""))
	assert.Equal(t, FieldResult{IsValid: true}, ValidateField(FieldSlug, "ok"))
	assert.Equal(t, FieldResult{IsValid: true}, ValidateField("unknown", ""))
}

func TestNewPostFields(t *testing.T) {
	f := NewPostFields("  Title ", " slug ", "   ")
	assert.Equal(t, "Title", f.Title)
	assert.Equal(t, "slug", f.Slug)
	assert.Nil(t, f.Content)

	f = NewPostFields("t", "s", " body ")
	if assert.NotNil(t, f.Content) {
		assert.Equal(t, "body", *f.Content)
	}
}
