package dto

// ErrorResponse is the uniform error body returned by every handler.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MessageResponse is the body for operations with no payload to return.
type MessageResponse struct {
	Message string `json:"message"`
}
