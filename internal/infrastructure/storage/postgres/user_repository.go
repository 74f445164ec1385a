package postgres

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"safetrip/internal/domain/user"
)

func NewUserRepository(db *Storage, log *slog.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log,
	}
}

type UserRepository struct {
	db  *Storage
	log *slog.Logger
}

const userColumns = `id, name, email, phone, password_hash, user_type, created_at`

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int, error) {
	err := r.db.Pool().QueryRow(ctx,
		`INSERT INTO users (name, email, phone, password_hash, user_type)
         VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		u.Name, u.Email, u.Phone, u.Password, string(u.Type)).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, user.ErrEmailTaken
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return u.ID, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (user.User, error) {
	var (
		u        user.User
		userType string
	)
	err := r.db.Pool().QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Password, &userType, &u.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, fmt.Errorf("select user: %w", err)
	}
	u.Type = user.Type(userType)
	return u, nil
}
