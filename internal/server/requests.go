package server

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jmylchreest/tonal/internal/validation"
)

// Request types with go-playground/validator tags. Grades are pointers so a
// missing grade can be told apart from grade 0.

// CheckRequest is the request body for POST /api/v1/check.
type CheckRequest struct {
	Color string `json:"color" validate:"required,max=16"`
	Grade *int   `json:"grade" validate:"required"`
}

// SetColorRequest is the request body for POST /api/v1/palette/color.
type SetColorRequest struct {
	Config string `json:"config" validate:"omitempty,max=65536"`
	Scale  string `json:"scale" validate:"required,max=64"`
	Grade  *int   `json:"grade" validate:"required"`
	Color  string `json:"color" validate:"required,max=16"`
}

// SessionMessage is a message sent by the client over a session websocket.
type SessionMessage struct {
	Type  string `json:"type" validate:"required,oneof=preview commit back forward"`
	Scale string `json:"scale" validate:"required_if=Type preview,required_if=Type commit,max=64"`
	Grade *int   `json:"grade" validate:"required_if=Type preview,required_if=Type commit"`
	Color string `json:"color" validate:"required_if=Type preview,required_if=Type commit,max=16"`
}

// validate is the shared validator instance for request validation.
var validate = validation.New()

// RequestError is a client error with optional per-field messages.
type RequestError struct {
	Message string
	Fields  map[string]string
}

// Error implements error.
func (e *RequestError) Error() string {
	return e.Message
}

// decodeAndValidate decodes JSON from r into data and validates it.
func decodeAndValidate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return &RequestError{Message: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return validateRequest(data)
}

// validateRequest converts validator errors to a RequestError.
func validateRequest(data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	fields, ok := validation.Fields(err)
	if !ok {
		return &RequestError{Message: err.Error()}
	}
	return &RequestError{Message: "validation failed", Fields: fields}
}
