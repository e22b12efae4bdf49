package dto

import (
	"time"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/SscSPs/pasale_ledger/internal/models"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	ID          string           `json:"id"`
	Category    string           `json:"category" binding:"required"`
	Amount      decimal.Decimal  `json:"amount" binding:"gte=0" swaggertype:"string"`
	Date        models.Timestamp `json:"date" swaggertype:"string" example:"2024-01-01"`
	Description string           `json:"description"`
	IsNecessary bool             `json:"isNecessary"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ID              string          `json:"id"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	AmountFormatted string          `json:"amountFormatted"`
	Date            time.Time       `json:"date"`
	DateBS          string          `json:"dateBS"`
	Description     string          `json:"description"`
	IsNecessary     bool            `json:"isNecessary"`
}

// ToDomain converts the request into a domain.Expense.
func (r CreateExpenseRequest) ToDomain(loc *time.Location) domain.Expense {
	return domain.Expense{
		ID:          r.ID,
		Category:    r.Category,
		Amount:      r.Amount,
		Date:        r.Date.InLocation(loc),
		Description: r.Description,
		IsNecessary: r.IsNecessary,
	}
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense, p Presenter) ExpenseResponse {
	return ExpenseResponse{
		ID:              e.ID,
		Category:        e.Category,
		Amount:          e.Amount,
		AmountFormatted: p.Money(e.Amount),
		Date:            p.Local(e.Date),
		DateBS:          p.Date(e.Date),
		Description:     e.Description,
		IsNecessary:     e.IsNecessary,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense.
func ToListExpenseResponse(expenses []domain.Expense, p Presenter) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i], p)
	}
	return res
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	DateFrom  string `form:"dateFrom"`
	DateTo    string `form:"dateTo"`
	Category  string `form:"category"`
	Necessity string `form:"necessity"`
	Search    string `form:"search"`
	Lang      string `form:"lang"`
}

// ExpenseBreakdownResponse totals a set of expenses.
type ExpenseBreakdownResponse struct {
	Count                int                        `json:"count"`
	Total                decimal.Decimal            `json:"total"`
	Necessary            decimal.Decimal            `json:"necessary"`
	Unnecessary          decimal.Decimal            `json:"unnecessary"`
	ByCategory           map[string]decimal.Decimal `json:"byCategory"`
	TotalFormatted       string                     `json:"totalFormatted"`
	NecessaryFormatted   string                     `json:"necessaryFormatted"`
	UnnecessaryFormatted string                     `json:"unnecessaryFormatted"`
}

// ToExpenseBreakdownResponse converts a domain.ExpenseBreakdown.
func ToExpenseBreakdownResponse(b domain.ExpenseBreakdown, p Presenter) ExpenseBreakdownResponse {
	return ExpenseBreakdownResponse{
		Count:                b.Count,
		Total:                b.Total,
		Necessary:            b.Necessary,
		Unnecessary:          b.Unnecessary,
		ByCategory:           b.ByCategory,
		TotalFormatted:       p.Money(b.Total),
		NecessaryFormatted:   p.Money(b.Necessary),
		UnnecessaryFormatted: p.Money(b.Unnecessary),
	}
}
