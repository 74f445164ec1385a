package expense

import (
	"time"

	"safetrip/internal/app/server/api/http/request"
	"safetrip/internal/domain/expense"
)

type ExpensePayload struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Amount    string    `json:"amount" example:"1250.50"`
	Currency  string    `json:"currency" example:"INR"`
	SpentOn   string    `json:"spent_on" format:"date"`
	CreatedAt time.Time `json:"created_at"`
}

func toPayload(e expense.Expense) ExpensePayload {
	return ExpensePayload{
		ID:        e.ID,
		Title:     e.Title,
		Category:  string(e.Category),
		Amount:    e.Amount.StringFixed(2),
		Currency:  e.Currency,
		SpentOn:   e.SpentOn.Format(time.DateOnly),
		CreatedAt: e.CreatedAt,
	}
}

type listInput struct{}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Status   string           `json:"status"`
	Expenses []ExpensePayload `json:"expenses"`
}

type addInput struct {
	Body struct {
		Title    string       `json:"title,omitempty"`
		Category string       `json:"category,omitempty"`
		Amount   request.Text `json:"amount,omitempty"`
		Currency string       `json:"currency,omitempty"`
		SpentOn  string       `json:"spent_on,omitempty"`
		_        struct{}     `json:"-" additionalProperties:"true"`
	} `nameHint:"ExpenseAddRequest"`
}

type addOutput struct {
	Body ExpenseResponse
}

type ExpenseResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Expense ExpensePayload `json:"expense"`
}

type deleteInput struct {
	ID int `path:"id"`
}

type deleteOutput struct {
	Body MessageResponse
}

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type summaryInput struct{}

type summaryOutput struct {
	Body SummaryResponse
}

type SummaryResponse struct {
	Status    string           `json:"status"`
	Summaries []SummaryPayload `json:"summaries"`
}

type SummaryPayload struct {
	Currency   string            `json:"currency"`
	Count      int               `json:"count"`
	Total      string            `json:"total"`
	ByCategory map[string]string `json:"by_category"`
}

func toSummaryPayload(s expense.Summary) SummaryPayload {
	byCategory := make(map[string]string, len(s.ByCategory))
	for category, amount := range s.ByCategory {
		byCategory[string(category)] = amount.StringFixed(2)
	}
	return SummaryPayload{
		Currency:   s.Currency,
		Count:      s.Count,
		Total:      s.Total.StringFixed(2),
		ByCategory: byCategory,
	}
}
