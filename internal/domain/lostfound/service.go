package lostfound

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"safetrip/internal/domain/user"
	"safetrip/internal/infrastructure/events"
	"safetrip/internal/validation"
)

type Servicer interface {
	Add(ctx context.Context, req CreateRequest) (Item, error)
	Update(ctx context.Context, req UpdateRequest) (Item, error)
	Delete(ctx context.Context, reportID int) error
	List(ctx context.Context) ([]Item, error)
}

// UserFinder resolves the reporting user.
type UserFinder interface {
	Get(ctx context.Context, id int) (user.User, error)
}

type Service struct {
	repo      Repository
	users     UserFinder
	publisher events.Publisher
	log       *slog.Logger
}

func NewService(repo Repository, users UserFinder, publisher events.Publisher, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		users:     users,
		publisher: publisher,
		log:       log.With("component", "lostfound_service"),
	}
}

func (s *Service) Add(ctx context.Context, req CreateRequest) (Item, error) {
	req.Location = strings.TrimSpace(req.Location)
	req.ItemDescription = strings.TrimSpace(req.ItemDescription)

	if err := validation.Struct(req); err != nil {
		return Item{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if !req.Status.Valid() {
		return Item{}, ErrInvalidStatus
	}

	var dateFound *time.Time
	if req.DateFound != nil {
		d, err := ParseDate(*req.DateFound)
		if err != nil {
			return Item{}, err
		}
		dateFound = d
	}

	if _, err := s.users.Get(ctx, req.UserID); err != nil {
		return Item{}, err
	}

	item := Item{
		UserID:          req.UserID,
		Location:        req.Location,
		ItemDescription: req.ItemDescription,
		Status:          req.Status,
		DateFound:       dateFound,
	}
	if err := s.repo.Create(ctx, &item); err != nil {
		return Item{}, fmt.Errorf("create report: %w", err)
	}

	s.log.Info("report created", "report_id", item.ReportID, "user_id", item.UserID, "status", item.Status)
	s.publish(ctx, item)

	return item, nil
}

func (s *Service) Update(ctx context.Context, req UpdateRequest) (Item, error) {
	if err := validation.Struct(req); err != nil {
		return Item{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	item, err := s.repo.Get(ctx, req.ReportID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Item{}, ErrNotFound
		}
		return Item{}, fmt.Errorf("get report: %w", err)
	}

	if req.Location != nil {
		item.Location = strings.TrimSpace(*req.Location)
	}
	if req.ItemDescription != nil {
		item.ItemDescription = strings.TrimSpace(*req.ItemDescription)
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return Item{}, ErrInvalidStatus
		}
		item.Status = *req.Status
	}
	if req.DateFound != nil {
		d, err := ParseDate(*req.DateFound)
		if err != nil {
			return Item{}, err
		}
		item.DateFound = d
	}

	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Item{}, ErrNotFound
		}
		return Item{}, fmt.Errorf("update report: %w", err)
	}

	return item, nil
}

func (s *Service) Delete(ctx context.Context, reportID int) error {
	if err := s.repo.Delete(ctx, reportID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

// publish is best effort; a broker outage never fails the report.
func (s *Service) publish(ctx context.Context, item Item) {
	err := s.publisher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.TypeLostFoundReported,
		Key:        strconv.Itoa(item.ReportID),
		OccurredAt: item.ReportDate,
		Payload: map[string]any{
			"report_id": item.ReportID,
			"user_id":   item.UserID,
			"location":  item.Location,
			"status":    item.Status,
		},
	})
	if err != nil {
		s.log.Warn("failed to publish report event", "report_id", item.ReportID, "error", err)
	}
}
