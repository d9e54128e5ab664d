package response

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Status     string `json:"status"`      // "success" or "error"
	StatusCode int    `json:"status_code"` // HTTP status code
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Success wraps data in a success envelope
func Success(statusCode int, data any) Response {
	return Response{
		Status:     StatusSuccess,
		StatusCode: statusCode,
		Data:       data,
	}
}

// Error wraps an already translated message in an error envelope
func Error(statusCode int, message string) Response {
	return Response{
		Status:     StatusError,
		StatusCode: statusCode,
		Error:      message,
	}
}
