// Package models contains request and response payloads for the greeting service.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidPayload is returned when the request body is not a JSON object
	// or the name field is not a string
	ErrInvalidPayload = errors.New("invalid JSON payload")

	// ErrMissingName is returned when the name field is absent or null
	ErrMissingName = errors.New("missing required field: name")
)

// GreetingRequest represents the body accepted by the greeting endpoint.
// Name is a pointer so an absent field can be told apart from an empty string.
type GreetingRequest struct {
	Name *string `json:"name"`
}

// ParseGreetingRequest decodes a complete request body. The body must be a
// single valid UTF-8 JSON value with nothing after it; errors wrap
// ErrInvalidPayload.
func ParseGreetingRequest(raw []byte) (*GreetingRequest, error) {
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: body is not valid UTF-8", ErrInvalidPayload)
	}

	var req GreetingRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return &req, nil
}

// NameValue returns the requested name, or ErrMissingName if none was sent.
// The empty string is a valid name.
func (r *GreetingRequest) NameValue() (string, error) {
	if r == nil || r.Name == nil {
		return "", ErrMissingName
	}
	return *r.Name, nil
}

// GreetingResponse represents the greeting response
type GreetingResponse struct {
	Greeting string `json:"greeting"`
}

// ErrorResponse is the body returned for rejected requests
type ErrorResponse struct {
	Error string `json:"error"`
}
