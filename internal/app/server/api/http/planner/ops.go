package planner

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) tripOp() huma.Operation {
	return huma.Operation{
		OperationID: "planner-trip",
		Method:      http.MethodPost,
		Path:        "/api/generate-trip",
		Summary:     "Generate a day by day trip plan",
		Tags:        []string{"planner"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) routesOp() huma.Operation {
	return huma.Operation{
		OperationID: "planner-routes",
		Method:      http.MethodPost,
		Path:        "/api/transport-routes",
		Summary:     "Suggest transport routes between two places",
		Tags:        []string{"planner"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) suggestionsOp() huma.Operation {
	return huma.Operation{
		OperationID: "planner-suggestions",
		Method:      http.MethodPost,
		Path:        "/api/travel-suggestions",
		Summary:     "Suggest destinations for the given preferences",
		Tags:        []string{"planner"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) suggestionsRootOp() huma.Operation {
	op := h.suggestionsOp()
	op.OperationID = "planner-suggestions-root"
	op.Path = "/travel-suggestions"
	op.Hidden = true
	return op
}

func (h *Handler) translateOp() huma.Operation {
	return huma.Operation{
		OperationID: "planner-translate",
		Method:      http.MethodPost,
		Path:        "/api/translate",
		Summary:     "Translate text between languages",
		Tags:        []string{"planner"},
		Middlewares: h.middleware,
	}
}
