// Package domain contains the core domain model for the application.
//
// This package defines:
//   - Entities: Post and the authenticated User
//   - Slug generation: Slugify, GenerateSlugFromTitle, IsValidSlug
//   - Validation: pure field validators returning a message or ""
//   - Domain Errors: the closed error taxonomy and HandleError
//
// Rules for this package:
//   - No external dependencies except the standard library and uuid
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Validators never log; a failed validation is an expected outcome
//
// Example:
//
//	res := domain.ValidatePostInputs(title, slug, content)
//	if !res.IsValid {
//	    return res.Errors
//	}
//	slug := domain.GenerateSlugFromTitle("Hello & World!!") // "hello-and-world"
package domain
