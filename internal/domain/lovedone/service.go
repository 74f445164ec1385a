package lovedone

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"safetrip/internal/domain/user"
	"safetrip/internal/validation"
)

type Servicer interface {
	Add(ctx context.Context, userID int, req AddRequest) ([]LovedOne, error)
	List(ctx context.Context, userID int) ([]LovedOne, error)
	Remove(ctx context.Context, userID, id int) error
}

type UserFinder interface {
	Get(ctx context.Context, id int) (user.User, error)
}

type Service struct {
	repo  Repository
	users UserFinder
	log   *slog.Logger
}

func NewService(repo Repository, users UserFinder, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		users: users,
		log:   log.With("component", "lovedone_service"),
	}
}

// Add stores the contact and returns the user's full contact list.
func (s *Service) Add(ctx context.Context, userID int, req AddRequest) ([]LovedOne, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	lo := LovedOne{UserID: userID, Name: req.Name, Email: req.Email}
	if err := s.repo.Create(ctx, &lo); err != nil {
		return nil, fmt.Errorf("create loved one: %w", err)
	}
	s.log.Info("loved one added", "user_id", userID, "loved_one_id", lo.ID)

	return s.list(ctx, userID)
}

func (s *Service) List(ctx context.Context, userID int) ([]LovedOne, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}
	return s.list(ctx, userID)
}

func (s *Service) Remove(ctx context.Context, userID, id int) error {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete loved one: %w", err)
	}
	return nil
}

func (s *Service) list(ctx context.Context, userID int) ([]LovedOne, error) {
	out, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list loved ones: %w", err)
	}
	if out == nil {
		out = []LovedOne{}
	}
	return out, nil
}
