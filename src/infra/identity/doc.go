// Package identity connects the service to the external auth provider.
//
// Verifier checks the HS256 access tokens the provider issues and resolves
// the caller of a request. GoTrueClient calls the provider's REST API for
// signup and password login.
package identity
