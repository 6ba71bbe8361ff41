package response

import "github.com/DeepakJD1226/Consultancy/pkg/errorbank"

// Response represents the standard API envelope
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Success returns a success response wrapping the data
func Success(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// Message returns a success response that carries only a message
func Message(msg string) Response {
	return Response{
		Success: true,
		Message: msg,
	}
}

// Error returns an error response wrapping the error message
func Error(err string) Response {
	return Response{
		Success: false,
		Error:   err,
	}
}

// FromError resolves the HTTP status and envelope for any error returned by a service
func FromError(err error) (int, Response) {
	appErr := errorbank.From(err)
	return appErr.StatusCode(), Error(appErr.Message())
}
