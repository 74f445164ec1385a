package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safetrip/internal/validation"
)

func TestNewError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		msg        string
		errs       []error
		wantStatus int
		wantMsg    string
	}{
		{name: "plain", status: http.StatusNotFound, msg: "User not found", wantStatus: http.StatusNotFound, wantMsg: "User not found"},
		{
			name:       "validation becomes bad request",
			status:     http.StatusUnprocessableEntity,
			msg:        "validation failed",
			errs:       []error{&huma.ErrorDetail{Location: "body.latitude", Message: "expected number"}},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "validation failed: body.latitude: expected number",
		},
		{
			name:       "plain wrapped errors",
			status:     http.StatusBadRequest,
			msg:        "Error while parsing input body",
			errs:       []error{errors.New("unexpected EOF"), nil},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Error while parsing input body: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewError(tt.status, tt.msg, tt.errs...)
			assert.Equal(t, tt.wantStatus, err.GetStatus())

			var env *Error
			require.True(t, errors.As(err, &env))
			assert.Equal(t, StatusError, env.Status)
			assert.Equal(t, tt.wantMsg, env.Message)
		})
	}
}

func TestMessage_ValidationErrors(t *testing.T) {
	verrs := validation.Errors{{Field: "email", Message: "email is required"}}
	err := fmt.Errorf("%w: %w", errors.New("invalid input"), verrs)

	assert.Equal(t, "email is required", Message(err))
	assert.Equal(t, "Invalid user type", Message(errors.New("Invalid user type")))
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	MethodNotAllowed(rec, httptest.NewRequest(http.MethodPut, "/api/login", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"error","message":"Invalid method"}`, rec.Body.String())
}
