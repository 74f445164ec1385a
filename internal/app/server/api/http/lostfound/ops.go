package lostfound

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "lostfound-list",
		Method:      http.MethodGet,
		Path:        "/api/lost-found-items",
		Summary:     "List lost and found reports, newest first",
		Tags:        []string{"lost-and-found"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) addOp() huma.Operation {
	return huma.Operation{
		OperationID: "lostfound-add",
		Method:      http.MethodPost,
		Path:        "/api/add-lost-found-item",
		Summary:     "Report a lost or found item",
		Tags:        []string{"lost-and-found"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "lostfound-update",
		Method:      http.MethodPost,
		Path:        "/api/update-lost-found-item",
		Summary:     "Update the provided fields of a report",
		Tags:        []string{"lost-and-found"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "lostfound-delete",
		Method:      http.MethodPost,
		Path:        "/api/delete-lost-found-item",
		Summary:     "Delete a report",
		Tags:        []string{"lost-and-found"},
		Middlewares: h.middleware,
	}
}
