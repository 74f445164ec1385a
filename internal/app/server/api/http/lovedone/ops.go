package lovedone

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "lovedone-list",
		Method:      http.MethodGet,
		Path:        "/api/loved_ones/{user_id}",
		Summary:     "List a user's emergency contacts",
		Tags:        []string{"loved-ones"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) addOp() huma.Operation {
	return huma.Operation{
		OperationID: "lovedone-add",
		Method:      http.MethodPost,
		Path:        "/api/loved_ones/{user_id}",
		Summary:     "Add an emergency contact",
		Tags:        []string{"loved-ones"},
		Middlewares: h.middleware,
	}
}

// addLegacyOp serves the path older web clients post to.
func (h *Handler) addLegacyOp() huma.Operation {
	op := h.addOp()
	op.OperationID = "lovedone-add-legacy"
	op.Path = "/api/add_loved_one/{user_id}"
	op.Hidden = true
	return op
}

func (h *Handler) removeOp() huma.Operation {
	return huma.Operation{
		OperationID: "lovedone-remove",
		Method:      http.MethodDelete,
		Path:        "/api/loved_ones/{user_id}/{loved_one_id}",
		Summary:     "Remove an emergency contact",
		Tags:        []string{"loved-ones"},
		Middlewares: h.middleware,
	}
}
