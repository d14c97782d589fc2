package service

import "net/http"

// RequestError carries a client-facing message, optional field-level errors,
// and the HTTP status handlers should respond with.
type RequestError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *RequestError) Error() string {
	return e.Message
}

func newValidationError(message string, fields map[string]string) *RequestError {
	return &RequestError{Status: http.StatusBadRequest, Message: message, Fields: fields}
}
