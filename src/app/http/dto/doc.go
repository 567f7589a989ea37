// Package dto contains Data Transfer Objects for HTTP requests and responses.
//
// DTOs are separate from domain entities to:
//   - Control what data is exposed in the API
//   - Handle JSON serialization/deserialization
//   - Version the API without changing domain models
//
// Naming convention:
//   - Request types: <Action><Resource>Request (e.g., SavePostRequest)
//   - Response types: <Resource>Response (e.g., BlogPostResponse)
//
// Request fields are deliberately not tagged with binding rules: the core
// validator produces the user-facing messages.
package dto
