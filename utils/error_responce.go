package utils

// ErrorResponse is the body of every failed request. Error carries the
// underlying cause and is omitted when there is none.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
