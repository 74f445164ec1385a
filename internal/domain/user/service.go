package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, req RegisterRequest) (int, error)
	Authenticate(ctx context.Context, req LoginRequest) (User, error)
	Get(ctx context.Context, id int) (User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (int, error) {
	req.Email = normalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)

	if err := s.validator.ValidateRegister(req); err != nil {
		s.log.Debug("validation failed", "email", req.Email, "error", err)
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.repo.Create(ctx, &User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    strings.TrimSpace(req.Phone),
		Password: string(hash),
		Type:     req.UserType,
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("user registered", "user_id", id, "user_type", req.UserType)
	return id, nil
}

func (s *Service) Authenticate(ctx context.Context, req LoginRequest) (User, error) {
	if err := s.validator.ValidateLogin(req); err != nil {
		return User{}, err
	}

	u, err := s.repo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return User{}, ErrInvalidAuth
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, id int) (User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
