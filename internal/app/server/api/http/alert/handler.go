package alert

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"safetrip/internal/app/server/api/http/response"
	"safetrip/internal/domain/alert"
)

type Handler struct {
	service    alert.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service alert.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.locationOp(), h.location)
}

func (h *Handler) location(ctx context.Context, input *locationInput) (*locationOutput, error) {
	report, err := h.service.ForLocation(ctx, input.Location)
	if err != nil {
		return nil, response.BadRequest(err)
	}

	return &locationOutput{Body: LocationResponse{
		Status:   response.StatusSuccess,
		Location: report.Location,
		News:     report.News,
		Analysis: report.Analysis,
	}}, nil
}
