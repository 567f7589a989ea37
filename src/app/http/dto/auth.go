package dto

// CredentialsRequest is the payload for POST /auth/signup and /auth/login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
