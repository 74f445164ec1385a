package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

const DefaultTTL = 24 * time.Hour

type Servicer interface {
	Create(ctx context.Context, userID int) (string, error)
	Validate(ctx context.Context, token string) (int, error)
	Revoke(ctx context.Context, token string) error
}

type Service struct {
	repo Repository
	ttl  time.Duration
	now  func() time.Time
	log  *slog.Logger
}

func NewService(repo Repository, ttl time.Duration, log *slog.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		repo: repo,
		ttl:  ttl,
		now:  time.Now,
		log:  log.With("component", "session_service"),
	}
}

// Create issues an opaque bearer token. Only its sha256 digest is stored.
func (s *Service) Create(ctx context.Context, userID int) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	token := base64.URLEncoding.EncodeToString(tokenBytes)

	expiresAt := s.now().Add(s.ttl)
	if err := s.repo.Create(ctx, userID, hashToken(token), expiresAt); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	s.log.Debug("session created", "user_id", userID, "expires_at", expiresAt)
	return token, nil
}

func (s *Service) Validate(ctx context.Context, token string) (int, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, ErrInvalid
	}
	return s.repo.Validate(ctx, hashToken(token))
}

func (s *Service) Revoke(ctx context.Context, token string) error {
	if err := s.repo.Delete(ctx, hashToken(strings.TrimSpace(token))); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
