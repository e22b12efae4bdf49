package services

import (
	"time"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/SscSPs/pasale_ledger/internal/utils/nepalidate"
	"github.com/shopspring/decimal"
)

// monthlySummaries buckets selling transactions (income) and expenses by
// month for every month from January of now's year through now's month.
// Dates are compared in now's location.
func monthlySummaries(txs []domain.Transaction, expenses []domain.Expense, now time.Time) []domain.MonthlySummary {
	loc := now.Location()
	year, current := now.Year(), int(now.Month())

	out := make([]domain.MonthlySummary, current)
	for m := 1; m <= current; m++ {
		out[m-1] = domain.MonthlySummary{
			Month:   nepalidate.MonthName(time.Month(m), nepalidate.English),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
	}

	inRange := func(t time.Time) (int, bool) {
		t = t.In(loc)
		if t.Year() != year || int(t.Month()) > current {
			return 0, false
		}
		return int(t.Month()) - 1, true
	}

	for _, tx := range txs {
		if tx.Type != domain.TxSelling {
			continue
		}
		if i, ok := inRange(tx.Date); ok {
			out[i].Income = out[i].Income.Add(tx.Amount)
		}
	}
	for _, e := range expenses {
		if i, ok := inRange(e.Date); ok {
			out[i].Expense = out[i].Expense.Add(e.Amount)
		}
	}
	return out
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// endOfDay is the last representable instant of t's calendar day.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// dailySales totals selling transactions dated on now's calendar day.
func dailySales(txs []domain.Transaction, now time.Time) domain.DailySales {
	from, to := startOfDay(now), endOfDay(now)
	out := domain.DailySales{Day: from, Total: decimal.Zero}
	for _, tx := range txs {
		if tx.Type != domain.TxSelling || tx.Date.Before(from) || tx.Date.After(to) {
			continue
		}
		out.Count++
		out.Total = out.Total.Add(tx.Amount)
	}
	return out
}
