package dto

// ValidateRequest is the payload for POST /v1/validate. When Field is set a
// single value is checked; otherwise the post form fields are.
type ValidateRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`

	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
}
