package dto

// ContentRequest is the payload for POST /posts/enhance and /posts/summarize.
type ContentRequest struct {
	Content string `json:"content"`
}
