package alert

import (
	"safetrip/internal/domain/alert"
	"safetrip/internal/infrastructure/news"
)

type locationInput struct {
	Location string `query:"location" doc:"City or area to assess"`
}

type locationOutput struct {
	Body LocationResponse
}

type LocationResponse struct {
	Status   string         `json:"status"`
	Location string         `json:"location"`
	News     []news.Entry   `json:"news"`
	Analysis alert.Analysis `json:"analysis"`
}
