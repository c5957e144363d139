package errors

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`          // User-facing message
	Code  string `json:"code,omitempty"` // Business error code, e.g. "LOGIN_ERROR"
	URL   string `json:"url,omitempty"`  // Where the client should go next, set on auth failures
}

// NewErrorResponse builds the body for an AppError.
func NewErrorResponse(appErr AppError) ErrorResponse {
	return ErrorResponse{
		Error: appErr.Message(),
		Code:  appErr.ErrorCode(),
	}
}
