package lovedone

import (
	"time"

	"safetrip/internal/domain/lovedone"
)

type LovedOnePayload struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toPayload(list []lovedone.LovedOne) []LovedOnePayload {
	out := make([]LovedOnePayload, 0, len(list))
	for _, lo := range list {
		out = append(out, LovedOnePayload{ID: lo.ID, Name: lo.Name, Email: lo.Email, CreatedAt: lo.CreatedAt})
	}
	return out
}

type listInput struct {
	UserID int `path:"user_id"`
}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message,omitempty"`
	LovedOnes []LovedOnePayload `json:"loved_ones"`
}

type addInput struct {
	UserID int `path:"user_id"`
	Body   struct {
		Name  string   `json:"name,omitempty"`
		Email string   `json:"email,omitempty"`
		_     struct{} `json:"-" additionalProperties:"true"`
	} `nameHint:"LovedoneAddRequest"`
}

type removeInput struct {
	UserID     int `path:"user_id"`
	LovedOneID int `path:"loved_one_id"`
}

type removeOutput struct {
	Body MessageResponse
}

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
