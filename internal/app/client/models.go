package client

import (
	"time"

	json "github.com/goccy/go-json"
)

// Session is the logged in identity kept between runs.
type Session struct {
	UserID   int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	Phone    string `json:"phone"`
	Token    string `json:"token"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

type LostFoundItem struct {
	ReportID        int       `json:"report_id"`
	UserID          int       `json:"user_id"`
	Location        string    `json:"location"`
	ItemDescription string    `json:"item_description"`
	Status          string    `json:"status"`
	ReportDate      time.Time `json:"report_date"`
	DateFound       *string   `json:"date_found"`
}

type NewLostFoundItem struct {
	UserID          int     `json:"user_id"`
	Location        string  `json:"location"`
	ItemDescription string  `json:"item_description"`
	Status          string  `json:"status"`
	DateFound       *string `json:"date_found,omitempty"`
}

// LostFoundUpdate sends only the non-nil fields.
type LostFoundUpdate struct {
	ReportID        int     `json:"report_id"`
	Location        *string `json:"location,omitempty"`
	ItemDescription *string `json:"item_description,omitempty"`
	Status          *string `json:"status,omitempty"`
	DateFound       *string `json:"date_found,omitempty"`
}

type LovedOne struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type SOSResult struct {
	Message         string `json:"message"`
	AlertID         string `json:"alert_id"`
	TotalContacts   int    `json:"total_contacts"`
	SuccessfulSends int    `json:"successful_sends"`
	FailedSends     int    `json:"failed_sends"`
}

type TripRequest struct {
	Days     string `json:"days"`
	Place    string `json:"place"`
	Budget   string `json:"budget"`
	Activity string `json:"activity"`
}

type SuggestionsRequest struct {
	Interests string `json:"interests,omitempty"`
	Budget    string `json:"budget,omitempty"`
	Duration  string `json:"duration,omitempty"`
	Travelers string `json:"travelers,omitempty"`
}

type Translation struct {
	TranslatedText string `json:"translatedText"`
	SourceLang     string `json:"sourceLang"`
	TargetLang     string `json:"targetLang"`
}

type NewsEntry struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
}

type LocationReport struct {
	Location string      `json:"location"`
	News     []NewsEntry `json:"news"`
	// Analysis holds the model's answer as it came back: usually strings,
	// sometimes objects.
	Analysis struct {
		Analysis    any `json:"analysis"`
		Alerts      any `json:"alerts"`
		Precautions any `json:"precautions"`
	} `json:"analysis"`
}

type Expense struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Amount    string    `json:"amount"`
	Currency  string    `json:"currency"`
	SpentOn   string    `json:"spent_on"`
	CreatedAt time.Time `json:"created_at"`
}

type NewExpense struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Currency string `json:"currency,omitempty"`
	SpentOn  string `json:"spent_on,omitempty"`
}

type ExpenseSummary struct {
	Currency   string            `json:"currency"`
	Count      int               `json:"count"`
	Total      string            `json:"total"`
	ByCategory map[string]string `json:"by_category"`
}

// RawJSON is an undecoded part of a reply.
type RawJSON = json.RawMessage
