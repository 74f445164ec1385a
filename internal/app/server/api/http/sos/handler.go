package sos

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"safetrip/internal/app/server/api/http/response"
	"safetrip/internal/domain/sos"
	"safetrip/internal/domain/user"
)

type Handler struct {
	service    sos.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service sos.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.dispatchOp(), h.dispatch)
}

func (h *Handler) dispatch(ctx context.Context, input *dispatchInput) (*dispatchOutput, error) {
	res, err := h.service.Dispatch(ctx, input.UserID, sos.Request{
		Latitude:  input.Body.Latitude,
		Longitude: input.Body.Longitude,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			return nil, response.NotFound(err)
		case errors.Is(err, sos.ErrNoContacts),
			errors.Is(err, sos.ErrMissingCoordinates),
			errors.Is(err, sos.ErrInvalidCoordinates):
			return nil, response.BadRequest(err)
		case errors.Is(err, sos.ErrAllFailed):
			return nil, huma.Error500InternalServerError(err.Error())
		default:
			h.log.Error("sos dispatch failed", "user_id", input.UserID, "error", err)
			return nil, huma.Error500InternalServerError(response.MsgInternal)
		}
	}

	return &dispatchOutput{Body: DispatchResponse{
		Status:          response.StatusSuccess,
		Message:         fmt.Sprintf("SOS alerts sent successfully to %d contacts", res.Successful),
		AlertID:         res.AlertID,
		TotalContacts:   res.TotalContacts,
		SuccessfulSends: res.Successful,
		FailedSends:     res.Failed,
	}}, nil
}
