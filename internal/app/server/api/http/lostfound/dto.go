package lostfound

import (
	"time"

	"safetrip/internal/domain/lostfound"
)

type ItemPayload struct {
	ReportID        int       `json:"report_id"`
	UserID          int       `json:"user_id"`
	Location        string    `json:"location"`
	ItemDescription string    `json:"item_description"`
	Status          string    `json:"status" enum:"Lost,Found,Recovered"`
	ReportDate      time.Time `json:"report_date"`
	DateFound       *string   `json:"date_found" format:"date" nullable:"true"`
}

func toPayload(item lostfound.Item) ItemPayload {
	return ItemPayload{
		ReportID:        item.ReportID,
		UserID:          item.UserID,
		Location:        item.Location,
		ItemDescription: item.ItemDescription,
		Status:          string(item.Status),
		ReportDate:      item.ReportDate,
		DateFound:       lostfound.FormatDate(item.DateFound),
	}
}

type listInput struct{}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Status string        `json:"status"`
	Items  []ItemPayload `json:"items"`
}

type addInput struct {
	Body struct {
		UserID          int      `json:"user_id,omitempty"`
		Location        string   `json:"location,omitempty"`
		ItemDescription string   `json:"item_description,omitempty"`
		Status          string   `json:"status,omitempty"` // Lost, Found or Recovered
		DateFound       *string  `json:"date_found,omitempty" nullable:"true"`
		_               struct{} `json:"-" additionalProperties:"true"`
	} `nameHint:"LostfoundAddRequest"`
}

type addOutput struct {
	Body ItemResponse
}

type ItemResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    ItemPayload `json:"data"`
}

// updateInput leaves absent and null fields untouched. An empty date_found clears it.
type updateInput struct {
	Body struct {
		ReportID        int      `json:"report_id,omitempty"`
		Location        *string  `json:"location,omitempty" nullable:"true"`
		ItemDescription *string  `json:"item_description,omitempty" nullable:"true"`
		Status          *string  `json:"status,omitempty" nullable:"true"`
		DateFound       *string  `json:"date_found,omitempty" nullable:"true"`
		_               struct{} `json:"-" additionalProperties:"true"`
	} `nameHint:"LostfoundUpdateRequest"`
}

type updateOutput struct {
	Body ItemResponse
}

type deleteInput struct {
	Body struct {
		ReportID int      `json:"report_id,omitempty"`
		_        struct{} `json:"-" additionalProperties:"true"`
	} `nameHint:"LostfoundDeleteRequest"`
}

type deleteOutput struct {
	Body MessageResponse
}

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
