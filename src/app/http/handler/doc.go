// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Parsing HTTP requests
// - Calling use case methods
// - Converting results to HTTP responses
package handler
