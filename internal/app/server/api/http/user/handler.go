package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"safetrip/internal/app/server/api/http/middleware/auth"
	"safetrip/internal/app/server/api/http/response"
	"safetrip/internal/domain/session"
	"safetrip/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	session    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
	authed     huma.Middlewares
}

// NewHandler takes the public middleware chain and the bearer-authenticated
// one used by logout.
func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, middleware, authed huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		session:    session,
		log:        log,
		middleware: middleware,
		authed:     authed,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	userID, err := h.service.Register(ctx, user.RegisterRequest{
		Name:     input.Body.Name,
		Email:    input.Body.Email,
		Phone:    input.Body.Phone.String(),
		Password: input.Body.Password,
		UserType: user.Type(input.Body.UserType),
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidUserType),
			errors.Is(err, user.ErrInvalidInput),
			errors.Is(err, user.ErrEmailTaken):
			return nil, response.BadRequest(err)
		default:
			h.log.Error("register failed", "error", err)
			return nil, huma.Error500InternalServerError(response.MsgInternal)
		}
	}

	return &registerOutput{
		Body: RegisterResponse{
			Status:  response.StatusSuccess,
			Message: "Registration successful",
			UserID:  userID,
		},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, user.LoginRequest{
		Email:    input.Body.Email,
		Password: input.Body.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			return nil, response.NotFound(err)
		case errors.Is(err, user.ErrInvalidAuth):
			return nil, response.BadRequest(err)
		default:
			h.log.Error("login failed", "error", err)
			return nil, huma.Error500InternalServerError(response.MsgInternal)
		}
	}

	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("create session", "user_id", u.ID, "error", err)
		return nil, huma.Error500InternalServerError(response.MsgInternal)
	}

	return &loginOutput{
		Body: LoginResponse{
			Status:  response.StatusSuccess,
			Message: "Login successful",
			User: UserPayload{
				ID:        u.ID,
				Name:      u.Name,
				Email:     u.Email,
				UserType:  string(u.Type),
				Phone:     u.Phone,
				CreatedAt: u.CreatedAt,
			},
			Token: token,
		},
	}, nil
}

func (h *Handler) logout(ctx context.Context, input *logoutInput) (*logoutOutput, error) {
	token, ok := auth.BearerToken(input.Authorization)
	if !ok {
		return nil, huma.Error401Unauthorized(response.MsgUnauthorized)
	}
	err := h.session.Revoke(ctx, token)
	if errors.Is(err, session.ErrInvalid) {
		return nil, huma.Error401Unauthorized(response.MsgUnauthorized)
	}
	if err != nil {
		h.log.Error("revoke session", "error", err)
		return nil, huma.Error500InternalServerError(response.MsgInternal)
	}

	return &logoutOutput{
		Body: MessageResponse{Status: response.StatusSuccess, Message: "Logged out"},
	}, nil
}
