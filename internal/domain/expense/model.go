package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryTransport     Category = "Transport"
	CategoryFood          Category = "Food"
	CategoryAccommodation Category = "Accommodation"
	CategoryActivities    Category = "Activities"
	CategoryShopping      Category = "Shopping"
	CategoryOther         Category = "Other"
)

var Categories = []Category{
	CategoryTransport,
	CategoryFood,
	CategoryAccommodation,
	CategoryActivities,
	CategoryShopping,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Expense struct {
	ID        int
	UserID    int
	Title     string
	Category  Category
	Amount    decimal.Decimal
	Currency  string
	SpentOn   time.Time
	CreatedAt time.Time
}

// Summary totals one currency. Amounts in different currencies are never added.
type Summary struct {
	Currency   string
	Count      int
	Total      decimal.Decimal
	ByCategory map[Category]decimal.Decimal
}
