package expense

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "expense-list",
		Method:      http.MethodGet,
		Path:        "/api/expenses",
		Summary:     "List the caller's trip expenses",
		Tags:        []string{"expenses"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) addOp() huma.Operation {
	return huma.Operation{
		OperationID: "expense-add",
		Method:      http.MethodPost,
		Path:        "/api/expenses",
		Summary:     "Record a trip expense",
		Tags:        []string{"expenses"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "expense-delete",
		Method:      http.MethodDelete,
		Path:        "/api/expenses/{id}",
		Summary:     "Delete one of the caller's expenses",
		Tags:        []string{"expenses"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) summaryOp() huma.Operation {
	return huma.Operation{
		OperationID: "expense-summary",
		Method:      http.MethodGet,
		Path:        "/api/expenses/summary",
		Summary:     "Totals per currency and category",
		Tags:        []string{"expenses"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}
