package api

import (
	"encoding/json"
	"fmt"
)

// Fallback messages for responses that carry no usable detail.
const (
	genericErrorMessage = "An error occurred"
	networkErrorMessage = "Network error. Please check your connection."
)

// Error is the single normalized error shape produced by the remote layer.
//
// Status carries the HTTP status code when the server responded; it is 0
// when no response arrived (network failure, timeout) or the request could
// not be constructed at all.
type Error struct {
	Status  int    `json:"statusCode"`
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// IsNetwork reports whether the error represents a transport failure with
// no server response.
func (e *Error) IsNetwork() bool {
	return e.Status == 0
}

// errorBody is the structured error payload some deployments return.
type errorBody struct {
	Message string `json:"message"`
	Detail  string `json:"error"`
}

// serverError builds the normalized error for a non-2xx response, preferring
// the server-provided message when the body parses.
func serverError(status int, body []byte) *Error {
	e := &Error{Status: status, Message: genericErrorMessage}
	var parsed errorBody
	if len(body) > 0 && json.Unmarshal(body, &parsed) == nil && parsed.Message != "" {
		e.Message = parsed.Message
		e.Detail = parsed.Detail
	}
	return e
}

// networkError builds the normalized error for a request that was sent but
// received no response.
func networkError() *Error {
	return &Error{Status: 0, Message: networkErrorMessage}
}

// requestError builds the normalized error for a request that could not be
// constructed or dispatched at all.
func requestError(err error) *Error {
	msg := "An unexpected error occurred"
	if err != nil {
		msg = err.Error()
	}
	return &Error{Status: 0, Message: msg}
}
