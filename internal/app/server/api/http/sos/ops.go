package sos

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) dispatchOp() huma.Operation {
	return huma.Operation{
		OperationID: "sos-dispatch",
		Method:      http.MethodPost,
		Path:        "/api/send-sos-alert/{user_id}",
		Summary:     "Email an SOS alert to every emergency contact",
		Tags:        []string{"sos"},
		Middlewares: h.middleware,
	}
}
