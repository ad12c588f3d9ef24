package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreetingRequest_NameValue(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantName string
		wantErr  error
	}{
		{
			name:     "name present",
			body:     `{"name":"World"}`,
			wantName: "World",
		},
		{
			name:     "empty name is valid",
			body:     `{"name":""}`,
			wantName: "",
		},
		{
			name:     "extra fields are ignored",
			body:     `{"name":"Ada","age":36}`,
			wantName: "Ada",
		},
		{
			name:    "name absent",
			body:    `{}`,
			wantErr: ErrMissingName,
		},
		{
			name:    "name null",
			body:    `{"name":null}`,
			wantErr: ErrMissingName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req GreetingRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			got, err := req.NameValue()
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got)
		})
	}
}

func TestGreetingRequest_NameValueNilReceiver(t *testing.T) {
	var req *GreetingRequest
	_, err := req.NameValue()
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestGreetingResponse_JSONShape(t *testing.T) {
	data, err := json.Marshal(GreetingResponse{Greeting: "Hello,World!"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"greeting":"Hello,World!"}`, string(data))
}

func TestParseGreetingRequest(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantName string
		wantErr  error
	}{
		{name: "object with name", body: `{"name":"World"}`, wantName: "World"},
		{name: "surrounding whitespace", body: " \n{\"name\":\"World\"}\n", wantName: "World"},
		{name: "escaped unicode", body: `{"name":"Zo\u00eb"}`, wantName: "Zoë"},
		{name: "missing name", body: `{}`, wantErr: ErrMissingName},
		{name: "empty body", body: ``, wantErr: ErrInvalidPayload},
		{name: "trailing garbage", body: `{"name":"a"} garbage`, wantErr: ErrInvalidPayload},
		{name: "two objects", body: `{"name":"a"}{"name":"b"}`, wantErr: ErrInvalidPayload},
		{name: "invalid UTF-8", body: "{\"name\":\"a\xff\"}", wantErr: ErrInvalidPayload},
		{name: "non-string name", body: `{"name":1}`, wantErr: ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseGreetingRequest([]byte(tt.body))
			if errors.Is(tt.wantErr, ErrInvalidPayload) {
				assert.ErrorIs(t, err, ErrInvalidPayload)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)

			got, err := req.NameValue()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got)
		})
	}
}
