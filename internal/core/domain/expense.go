package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an operating cost recorded outside the transaction list.
type Expense struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	IsNecessary bool            `json:"isNecessary"`
}

// ExpenseNecessity selects necessary or unnecessary expenses.
type ExpenseNecessity string

const (
	NecessityAll         ExpenseNecessity = "all"
	NecessityNecessary   ExpenseNecessity = "necessary"
	NecessityUnnecessary ExpenseNecessity = "unnecessary"
)

// IsValid reports whether n is an accepted necessity filter.
func (n ExpenseNecessity) IsValid() bool {
	switch n {
	case NecessityAll, NecessityNecessary, NecessityUnnecessary:
		return true
	}
	return false
}

// ExpenseFilter narrows the expense list. Zero values mean "no filter".
type ExpenseFilter struct {
	DateFrom  *time.Time
	DateTo    *time.Time
	Category  string // exact match, case-insensitive
	Necessity ExpenseNecessity
	Search    string // substring of the description or the category
}

// ExpenseBreakdown totals a set of expenses.
type ExpenseBreakdown struct {
	Count       int                        `json:"count"`
	Total       decimal.Decimal            `json:"total"`
	Necessary   decimal.Decimal            `json:"necessary"`
	Unnecessary decimal.Decimal            `json:"unnecessary"`
	ByCategory  map[string]decimal.Decimal `json:"byCategory"`
}
