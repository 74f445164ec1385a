// Package response renders every API reply as {"status": ..., ...}.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	json "github.com/goccy/go-json"

	"safetrip/internal/validation"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"

	MsgInvalidMethod = "Invalid method"
	MsgNotFound      = "Not found"
	MsgUnauthorized  = "Unauthorized"
	MsgInternal      = "Internal server error"
)

// Error is the failure envelope. It satisfies huma.StatusError.
type Error struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"User not found"`
	code    int
}

func (e *Error) Error() string { return e.Message }

func (e *Error) GetStatus() int { return e.code }

// NewError replaces huma.NewError. Schema validation failures (422) are
// reported as 400 with the offending fields in the message.
func NewError(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}

	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		var detail *huma.ErrorDetail
		if errors.As(err, &detail) && detail.Location != "" {
			details = append(details, fmt.Sprintf("%s: %s", detail.Location, detail.Message))
			continue
		}
		details = append(details, err.Error())
	}
	if len(details) > 0 {
		msg = msg + ": " + strings.Join(details, "; ")
	}

	return &Error{Status: StatusError, Message: msg, code: status}
}

// Install makes huma build every error through NewError.
func Install() {
	huma.NewError = NewError
}

// Message picks the text shown to clients for err. Field validation
// failures show only the field messages.
func Message(err error) string {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return verrs.Error()
	}
	return err.Error()
}

// BadRequest wraps a domain error as a 400 envelope.
func BadRequest(err error) error {
	return huma.Error400BadRequest(Message(err))
}

func NotFound(err error) error {
	return huma.Error404NotFound(err.Error())
}

// Write renders the envelope outside of huma (router fallbacks, middlewares).
func Write(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Error{Status: StatusError, Message: msg})
}

func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	Write(w, http.StatusMethodNotAllowed, MsgInvalidMethod)
}

func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	Write(w, http.StatusNotFound, MsgNotFound)
}
