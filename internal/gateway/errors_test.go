package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: map[string][]string{
		"quantity": {"Not enough stock", "Must be positive"},
		"customer": {"This field is required."},
	}}

	// Fields render sorted so the message is stable across runs.
	assert.Equal(t,
		"customer: This field is required.\nquantity: Not enough stock, Must be positive",
		err.Error())
}

func TestStatusError_Error(t *testing.T) {
	assert.Equal(t, "order not found", (&StatusError{Message: "order not found", StatusCode: 404}).Error())
	assert.Equal(t, "gateway returned status 502", (&StatusError{StatusCode: 502}).Error())
}

func TestIsMethodNotAllowed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"405 status error", &StatusError{StatusCode: http.StatusMethodNotAllowed}, true},
		{"wrapped 405", fmt.Errorf("remove return: %w", &StatusError{StatusCode: http.StatusMethodNotAllowed}), true},
		{"other status", &StatusError{StatusCode: http.StatusNotFound}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMethodNotAllowed(tt.err))
		})
	}
}
