package dto

import "time"

// ErrorResponse is the standardized error payload returned by every
// endpoint. ErrorDetails carries the underlying error text when one exists.
type ErrorResponse struct {
	Message      string    `json:"message" example:"no snapshot available"`
	ErrorDetails string    `json:"error,omitempty" example:"connection refused"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel
// through error-typed plumbing when needed.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse with the current timestamp.
// A nil err leaves ErrorDetails empty.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
