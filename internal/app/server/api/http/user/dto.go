package user

import (
	"time"

	"safetrip/internal/app/server/api/http/request"
)

type registerInput struct {
	Body struct {
		Name     string       `json:"name,omitempty"`
		Email    string       `json:"email,omitempty"`
		Phone    request.Text `json:"phone,omitempty"`
		Password string       `json:"password,omitempty"`
		UserType string       `json:"user_type,omitempty"` // Traveler or Community
		_        struct{}     `json:"-" additionalProperties:"true"`
	} `nameHint:"UserRegisterRequest"`
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
}

type loginInput struct {
	Body struct {
		Email    string   `json:"email,omitempty"`
		Password string   `json:"password,omitempty"`
		_        struct{} `json:"-" additionalProperties:"true"`
	} `nameHint:"UserLoginRequest"`
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	User    UserPayload `json:"user"`
	Token   string      `json:"token" doc:"Bearer token for authenticated endpoints"`
}

type UserPayload struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	UserType  string    `json:"user_type"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type logoutInput struct {
	Authorization string `header:"Authorization"`
}

type logoutOutput struct {
	Body MessageResponse
}

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
