package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/pasale_ledger/internal/apperrors"
	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// parseDateRange reads optional YYYY-MM-DD bounds as calendar days in loc.
func parseDateRange(dateFrom, dateTo string, loc *time.Location) (from, to *time.Time, err error) {
	if loc == nil {
		loc = time.UTC
	}
	if s := strings.TrimSpace(dateFrom); s != "" {
		d, err := time.ParseInLocation(dateLayout, s, loc)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: dateFrom must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		from = &d
	}
	if s := strings.TrimSpace(dateTo); s != "" {
		d, err := time.ParseInLocation(dateLayout, s, loc)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: dateTo must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		to = &d
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Errorf("%w: dateFrom must be before or equal to dateTo", apperrors.ErrValidation)
	}
	return from, to, nil
}

// ParseTransactionFilter builds the transaction list filter. txType is empty,
// "all" or one transaction type.
func ParseTransactionFilter(dateFrom, dateTo, txType, search string, loc *time.Location) (domain.LedgerFilter, error) {
	var f domain.LedgerFilter

	from, to, err := parseDateRange(dateFrom, dateTo, loc)
	if err != nil {
		return f, err
	}
	f.DateFrom, f.DateTo = from, to

	t := strings.ToLower(strings.TrimSpace(txType))
	switch {
	case t == "" || t == string(domain.LedgerAll):
		f.Type = domain.LedgerAll
	case domain.TransactionType(t).IsValid():
		f.Type = domain.LedgerType(t)
	default:
		return f, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, txType)
	}

	f.SearchText = strings.TrimSpace(search)
	return f, nil
}

// ParseExpenseFilter builds an expense filter from raw query values. Category
// "all" means every category.
func ParseExpenseFilter(dateFrom, dateTo, category, necessity, search string, loc *time.Location) (domain.ExpenseFilter, error) {
	var f domain.ExpenseFilter

	from, to, err := parseDateRange(dateFrom, dateTo, loc)
	if err != nil {
		return f, err
	}
	f.DateFrom, f.DateTo = from, to

	f.Category = strings.TrimSpace(category)
	if strings.EqualFold(f.Category, "all") {
		f.Category = ""
	}

	f.Necessity = domain.ExpenseNecessity(strings.ToLower(strings.TrimSpace(necessity)))
	if f.Necessity == "" {
		f.Necessity = domain.NecessityAll
	}
	if !f.Necessity.IsValid() {
		return f, fmt.Errorf("%w: necessity must be one of all, necessary, unnecessary", apperrors.ErrValidation)
	}

	f.Search = strings.TrimSpace(search)
	return f, nil
}

func matchesExpense(e domain.Expense, f domain.ExpenseFilter) bool {
	if f.DateFrom != nil && e.Date.Before(startOfDay(*f.DateFrom)) {
		return false
	}
	if f.DateTo != nil && e.Date.After(endOfDay(*f.DateTo)) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(e.Category, f.Category) {
		return false
	}
	switch f.Necessity {
	case domain.NecessityNecessary:
		if !e.IsNecessary {
			return false
		}
	case domain.NecessityUnnecessary:
		if e.IsNecessary {
			return false
		}
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(e.Description), q) && !strings.Contains(strings.ToLower(e.Category), q) {
			return false
		}
	}
	return true
}

func breakdown(expenses []domain.Expense) domain.ExpenseBreakdown {
	b := domain.ExpenseBreakdown{
		Total:       decimal.Zero,
		Necessary:   decimal.Zero,
		Unnecessary: decimal.Zero,
		ByCategory:  make(map[string]decimal.Decimal),
	}
	for _, e := range expenses {
		b.Count++
		b.Total = b.Total.Add(e.Amount)
		if e.IsNecessary {
			b.Necessary = b.Necessary.Add(e.Amount)
		} else {
			b.Unnecessary = b.Unnecessary.Add(e.Amount)
		}
		b.ByCategory[e.Category] = b.ByCategory[e.Category].Add(e.Amount)
	}
	return b
}
