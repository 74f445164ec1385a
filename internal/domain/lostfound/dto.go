package lostfound

type CreateRequest struct {
	UserID          int     `json:"user_id" validate:"required"`
	Location        string  `json:"location" validate:"required,max=255"`
	ItemDescription string  `json:"item_description" validate:"required"`
	Status          Status  `json:"status"`
	DateFound       *string `json:"date_found"`
}

// UpdateRequest changes only the fields that are set.
type UpdateRequest struct {
	ReportID        int     `json:"report_id" validate:"required"`
	Location        *string `json:"location" validate:"omitempty,max=255"`
	ItemDescription *string `json:"item_description"`
	Status          *Status `json:"status"`
	DateFound       *string `json:"date_found"`
}
