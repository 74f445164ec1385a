package expense

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"safetrip/internal/validation"
)

const DefaultCurrency = "INR"

var maxAmount = decimal.RequireFromString("9999999999.99")

type Servicer interface {
	Add(ctx context.Context, userID int, req AddRequest) (Expense, error)
	List(ctx context.Context, userID int) ([]Expense, error)
	Delete(ctx context.Context, userID, id int) error
	Summary(ctx context.Context, userID int) ([]Summary, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		log:  log.With("component", "expense_service"),
	}
}

func (s *Service) Add(ctx context.Context, userID int, req AddRequest) (Expense, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Amount = strings.TrimSpace(req.Amount)
	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))

	if err := validation.Struct(req); err != nil {
		return Expense{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if !req.Category.Valid() {
		return Expense{}, ErrInvalidCategory
	}

	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return Expense{}, err
	}

	spentOn := s.now().UTC().Truncate(24 * time.Hour)
	if req.SpentOn != "" {
		// format already checked by the validator
		spentOn, _ = time.Parse(time.DateOnly, req.SpentOn)
	}

	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	e := Expense{
		UserID:   userID,
		Title:    req.Title,
		Category: req.Category,
		Amount:   amount,
		Currency: currency,
		SpentOn:  spentOn,
	}
	if err := s.repo.Create(ctx, &e); err != nil {
		return Expense{}, fmt.Errorf("create expense: %w", err)
	}

	s.log.Debug("expense added", "user_id", userID, "expense_id", e.ID, "amount", e.Amount.StringFixed(2))
	return e, nil
}

func (s *Service) List(ctx context.Context, userID int) ([]Expense, error) {
	out, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	if out == nil {
		out = []Expense{}
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// Summary totals the user's expenses per currency, ordered by currency code.
func (s *Service) Summary(ctx context.Context, userID int) ([]Summary, error) {
	list, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Summarize(list), nil
}

func Summarize(list []Expense) []Summary {
	byCurrency := make(map[string]*Summary)
	for _, e := range list {
		sum, ok := byCurrency[e.Currency]
		if !ok {
			sum = &Summary{
				Currency:   e.Currency,
				Total:      decimal.Zero,
				ByCategory: make(map[Category]decimal.Decimal),
			}
			byCurrency[e.Currency] = sum
		}
		sum.Count++
		sum.Total = sum.Total.Add(e.Amount)
		sum.ByCategory[e.Category] = sum.ByCategory[e.Category].Add(e.Amount)
	}

	out := make([]Summary, 0, len(byCurrency))
	for _, sum := range byCurrency {
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out
}

// ParseAmount accepts a positive decimal with at most two fractional digits.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) || amount.GreaterThan(maxAmount) {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return amount, nil
}
