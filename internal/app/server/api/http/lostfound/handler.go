package lostfound

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"safetrip/internal/app/server/api/http/response"
	"safetrip/internal/domain/lostfound"
	"safetrip/internal/domain/user"
)

type Handler struct {
	service    lostfound.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service lostfound.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.addOp(), h.add)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	items, err := h.service.List(ctx)
	if err != nil {
		return nil, h.fail("list reports", err)
	}

	payload := make([]ItemPayload, 0, len(items))
	for _, item := range items {
		payload = append(payload, toPayload(item))
	}
	return &listOutput{Body: ListResponse{Status: response.StatusSuccess, Items: payload}}, nil
}

func (h *Handler) add(ctx context.Context, input *addInput) (*addOutput, error) {
	item, err := h.service.Add(ctx, lostfound.CreateRequest{
		UserID:          input.Body.UserID,
		Location:        input.Body.Location,
		ItemDescription: input.Body.ItemDescription,
		Status:          lostfound.Status(input.Body.Status),
		DateFound:       input.Body.DateFound,
	})
	if err != nil {
		return nil, h.fail("add report", err)
	}

	return &addOutput{Body: ItemResponse{Status: response.StatusSuccess, Data: toPayload(item)}}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	req := lostfound.UpdateRequest{
		ReportID:        input.Body.ReportID,
		Location:        input.Body.Location,
		ItemDescription: input.Body.ItemDescription,
		DateFound:       input.Body.DateFound,
	}
	if input.Body.Status != nil {
		status := lostfound.Status(*input.Body.Status)
		req.Status = &status
	}

	item, err := h.service.Update(ctx, req)
	if err != nil {
		return nil, h.fail("update report", err)
	}

	return &updateOutput{Body: ItemResponse{
		Status:  response.StatusSuccess,
		Message: "Lost and found item updated successfully",
		Data:    toPayload(item),
	}}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.Body.ReportID); err != nil {
		return nil, h.fail("delete report", err)
	}

	return &deleteOutput{Body: MessageResponse{
		Status:  response.StatusSuccess,
		Message: "Lost and found item deleted successfully",
	}}, nil
}

func (h *Handler) fail(op string, err error) error {
	switch {
	case errors.Is(err, lostfound.ErrNotFound), errors.Is(err, user.ErrNotFound):
		return response.NotFound(err)
	case errors.Is(err, lostfound.ErrInvalidInput),
		errors.Is(err, lostfound.ErrInvalidStatus),
		errors.Is(err, lostfound.ErrInvalidDate):
		return response.BadRequest(err)
	default:
		h.log.Error(op, "error", err)
		return huma.Error500InternalServerError(response.MsgInternal)
	}
}
