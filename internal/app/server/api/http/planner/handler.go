package planner

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"safetrip/internal/app/server/api/http/response"
	"safetrip/internal/domain/planner"
)

// Handler exposes the AI planning endpoints. Upstream failures are
// reported as 400 with the failure text, like input errors.
type Handler struct {
	service    planner.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service planner.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.tripOp(), h.trip)
	huma.Register(api, h.routesOp(), h.routes)
	huma.Register(api, h.suggestionsOp(), h.suggestions)
	huma.Register(api, h.suggestionsRootOp(), h.suggestions)
	huma.Register(api, h.translateOp(), h.translate)
}

func (h *Handler) trip(ctx context.Context, input *tripInput) (*tripOutput, error) {
	plan, err := h.service.GenerateTrip(ctx, planner.TripRequest{
		Days:     input.Body.Days.String(),
		Place:    input.Body.Place,
		Budget:   input.Body.Budget.String(),
		Activity: input.Body.Activity,
	})
	if err != nil {
		h.log.Warn("generate trip failed", "error", err)
		return nil, response.BadRequest(err)
	}
	return &tripOutput{Body: TripResponse{Status: response.StatusSuccess, TripPlan: plan}}, nil
}

func (h *Handler) routes(ctx context.Context, input *routesInput) (*routesOutput, error) {
	routes, err := h.service.TransportRoutes(ctx, planner.RoutesRequest{
		Source:      input.Body.Source,
		Destination: input.Body.Destination,
	})
	if err != nil {
		h.log.Warn("transport routes failed", "error", err)
		return nil, response.BadRequest(err)
	}
	return &routesOutput{Body: RoutesResponse{Status: response.StatusSuccess, Routes: routes}}, nil
}

func (h *Handler) suggestions(ctx context.Context, input *suggestionsInput) (*suggestionsOutput, error) {
	suggestions, err := h.service.Suggestions(ctx, planner.SuggestionsRequest{
		Interests: input.Body.Interests,
		Budget:    input.Body.Budget.String(),
		Duration:  input.Body.Duration.String(),
		Travelers: input.Body.Travelers.String(),
	})
	if err != nil {
		return nil, response.BadRequest(err)
	}
	return &suggestionsOutput{Body: SuggestionsResponse{Status: response.StatusSuccess, Suggestions: suggestions}}, nil
}

func (h *Handler) translate(ctx context.Context, input *translateInput) (*translateOutput, error) {
	tr, err := h.service.Translate(ctx, planner.TranslateRequest{
		SourceText: input.Body.SourceText,
		SourceLang: input.Body.SourceLang,
		TargetLang: input.Body.TargetLang,
	})
	if err != nil {
		h.log.Warn("translate failed", "error", err)
		return nil, response.BadRequest(err)
	}
	return &translateOutput{Body: TranslateResponse{
		Status:         response.StatusSuccess,
		TranslatedText: tr.Text,
		SourceLang:     tr.SourceLang,
		TargetLang:     tr.TargetLang,
	}}, nil
}
