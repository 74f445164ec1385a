package lovedone

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"safetrip/internal/app/server/api/http/response"
	"safetrip/internal/domain/lovedone"
	"safetrip/internal/domain/user"
)

type Handler struct {
	service    lovedone.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service lovedone.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.addOp(), h.add)
	huma.Register(api, h.addLegacyOp(), h.add)
	huma.Register(api, h.removeOp(), h.remove)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	list, err := h.service.List(ctx, input.UserID)
	if err != nil {
		return nil, h.fail("list loved ones", err)
	}
	return &listOutput{Body: ListResponse{Status: response.StatusSuccess, LovedOnes: toPayload(list)}}, nil
}

func (h *Handler) add(ctx context.Context, input *addInput) (*listOutput, error) {
	list, err := h.service.Add(ctx, input.UserID, lovedone.AddRequest{
		Name:  input.Body.Name,
		Email: input.Body.Email,
	})
	if err != nil {
		return nil, h.fail("add loved one", err)
	}

	return &listOutput{Body: ListResponse{
		Status:    response.StatusSuccess,
		Message:   "Loved one added successfully",
		LovedOnes: toPayload(list),
	}}, nil
}

func (h *Handler) remove(ctx context.Context, input *removeInput) (*removeOutput, error) {
	if err := h.service.Remove(ctx, input.UserID, input.LovedOneID); err != nil {
		return nil, h.fail("remove loved one", err)
	}
	return &removeOutput{Body: MessageResponse{
		Status:  response.StatusSuccess,
		Message: "Loved one removed successfully",
	}}, nil
}

func (h *Handler) fail(op string, err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound), errors.Is(err, lovedone.ErrNotFound):
		return response.NotFound(err)
	case errors.Is(err, lovedone.ErrInvalidInput):
		return response.BadRequest(err)
	default:
		h.log.Error(op, "error", err)
		return huma.Error500InternalServerError(response.MsgInternal)
	}
}
