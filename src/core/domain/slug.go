package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	slugPattern     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	slugDisallowed  = regexp.MustCompile(`[^\w\s\v\p{Zs}-]`)
	slugSeparators  = regexp.MustCompile(`[\s\v\p{Zs}_]+`)
	slugHyphenRuns  = regexp.MustCompile(`-+`)
	slugFallbackNow = time.Now
)

// Slugify converts text to a URL-safe slug. Each step works on the output of
// the previous one, so the order below must not change.
func Slugify(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = strings.ReplaceAll(s, "&", "and")
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValidSlug reports whether slug is lowercase alphanumeric words joined by
// single hyphens, between 1 and MaxSlugLength characters.
func IsValidSlug(slug string) bool {
	return len(slug) > 0 && len(slug) <= MaxSlugLength && slugPattern.MatchString(slug)
}

// GenerateSlugFromTitle slugifies title. When nothing survives (a title made
// only of punctuation, say) it falls back to post-<unix millis>. The fallback
// is not guaranteed unique; the store's unique index catches collisions.
func GenerateSlugFromTitle(title string) string {
	slug := Slugify(title)
	if len(slug) > MaxSlugLength {
		slug = strings.TrimRight(slug[:MaxSlugLength], "-")
	}
	if slug == "" {
		return fmt.Sprintf("post-%d", slugFallbackNow().UnixMilli())
	}
	return slug
}
