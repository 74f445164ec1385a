package planner

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"safetrip/internal/infrastructure/llm"
	"safetrip/internal/validation"
)

const (
	defaultInterests = "any"
	defaultBudget    = "flexible"
	defaultDuration  = "any"
	defaultTravelers = "1"
)

type Servicer interface {
	GenerateTrip(ctx context.Context, req TripRequest) (any, error)
	TransportRoutes(ctx context.Context, req RoutesRequest) ([]any, error)
	Suggestions(ctx context.Context, req SuggestionsRequest) ([]any, error)
	Translate(ctx context.Context, req TranslateRequest) (Translation, error)
}

type Service struct {
	llm llm.Completer
	log *slog.Logger
}

func NewService(completer llm.Completer, log *slog.Logger) *Service {
	return &Service{
		llm: completer,
		log: log.With("component", "planner_service"),
	}
}

// GenerateTrip returns the decoded plan, or the raw reply text when the
// model did not answer with JSON.
func (s *Service) GenerateTrip(ctx context.Context, req TripRequest) (any, error) {
	req = TripRequest{
		Days:     strings.TrimSpace(req.Days),
		Place:    strings.TrimSpace(req.Place),
		Budget:   strings.TrimSpace(req.Budget),
		Activity: strings.TrimSpace(req.Activity),
	}
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	reply, err := s.llm.Complete(ctx, tripSystemPrompt,
		fmt.Sprintf(tripUserPrompt, req.Days, req.Place, req.Budget, req.Activity))
	if err != nil {
		return nil, err
	}

	return llm.Decode(reply), nil
}

// TransportRoutes always yields a list; anything but a JSON array becomes empty.
func (s *Service) TransportRoutes(ctx context.Context, req RoutesRequest) ([]any, error) {
	source := strings.TrimSpace(req.Source)
	destination := strings.TrimSpace(req.Destination)
	if source == "" || destination == "" {
		return nil, ErrRouteEndpoints
	}

	reply, err := s.llm.Complete(ctx, routesSystemPrompt, fmt.Sprintf(routesUserPrompt, source, destination))
	if err != nil {
		return nil, err
	}

	routes, ok := llm.Decode(reply).([]any)
	if !ok {
		s.log.Warn("routes reply is not a list", "source", source, "destination", destination)
		return []any{}, nil
	}
	return routes, nil
}

func (s *Service) Suggestions(ctx context.Context, req SuggestionsRequest) ([]any, error) {
	reply, err := s.llm.Complete(ctx, suggestionsSystemPrompt, fmt.Sprintf(suggestionsUserPrompt,
		orDefault(req.Interests, defaultInterests),
		orDefault(req.Budget, defaultBudget),
		orDefault(req.Duration, defaultDuration),
		orDefault(req.Travelers, defaultTravelers),
	))
	if err != nil {
		s.log.Error("travel suggestions failed", "error", err)
		return nil, ErrSuggestionsFailed
	}

	suggestions, ok := llm.Decode(reply).([]any)
	if !ok {
		s.log.Error("travel suggestions reply is not a list")
		return nil, ErrSuggestionsFailed
	}
	return suggestions, nil
}

func (s *Service) Translate(ctx context.Context, req TranslateRequest) (Translation, error) {
	if strings.TrimSpace(req.SourceText) == "" || req.SourceLang == "" || req.TargetLang == "" {
		return Translation{}, ErrMissingFields
	}

	reply, err := s.llm.Complete(ctx, translateSystemPrompt,
		fmt.Sprintf(translateUserPrompt, req.SourceText, req.SourceLang, req.TargetLang))
	if err != nil {
		return Translation{}, err
	}

	return Translation{
		Text:       strings.TrimSpace(reply),
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	}, nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
