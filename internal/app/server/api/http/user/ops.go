package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-register",
		Method:      http.MethodPost,
		Path:        "/api/register",
		Summary:     "Register a traveler or community member",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-login",
		Method:      http.MethodPost,
		Path:        "/api/login",
		Summary:     "Log in and receive a bearer token",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-logout",
		Method:      http.MethodPost,
		Path:        "/api/logout",
		Summary:     "Revoke the current bearer token",
		Tags:        []string{"users"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.authed,
	}
}
