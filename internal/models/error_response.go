package models

// ErrorResponse is an error carrying the HTTP status it should be reported with.
type ErrorResponse struct {
	StatusCode int    `json:"-"`
	Message    string `json:"reason"`
	cause      error
}

// NewErrorResponse creates an error with a status code and message.
func NewErrorResponse(statusCode int, message string) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: statusCode,
		Message:    message}
}

// WrapErrorResponse creates an error with a status code that reports cause as its message.
func WrapErrorResponse(statusCode int, cause error) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: statusCode,
		Message:    cause.Error(),
		cause:      cause}
}

// Error implements the error interface.
func (e *ErrorResponse) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ErrorResponse) Unwrap() error {
	return e.cause
}
