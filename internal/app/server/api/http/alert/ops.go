package alert

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) locationOp() huma.Operation {
	return huma.Operation{
		OperationID: "alert-location",
		Method:      http.MethodGet,
		Path:        "/api/alerts/location",
		Summary:     "Recent news and a safety analysis for a location",
		Tags:        []string{"alerts"},
		Middlewares: h.middleware,
	}
}
