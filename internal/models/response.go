package models

// ErrorResponse is the error body shared by every JSON endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

type ContentResponse struct {
	Content string `json:"content"`
}

type MediaURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expires_in"`
}

func NewErrorResponse(err string) ErrorResponse {
	return ErrorResponse{Error: err}
}
