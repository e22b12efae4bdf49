package dto

import (
	"time"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportParams defines query parameters shared by report endpoints.
type ReportParams struct {
	Lang   string `form:"lang"`
	Format string `form:"format"`
}

// BusinessReportResponse represents the whole-business report response
type BusinessReportResponse struct {
	TotalSales      decimal.Decimal   `json:"totalSales"`
	TotalPurchases  decimal.Decimal   `json:"totalPurchases"`
	TotalExpenses   decimal.Decimal   `json:"totalExpenses"`
	Profit          decimal.Decimal   `json:"profit"`
	TotalReceivable decimal.Decimal   `json:"totalReceivable"`
	TotalPayable    decimal.Decimal   `json:"totalPayable"`
	NetBalance      decimal.Decimal   `json:"netBalance"`
	CashInHand      decimal.Decimal   `json:"cashInHand"`
	GeneratedAt     time.Time         `json:"generatedAt"`
	GeneratedAtBS   string            `json:"generatedAtBS"`
	Formatted       map[string]string `json:"formatted"`
}

// MonthlySummaryResponse is one bar of the income/expense chart
type MonthlySummaryResponse struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// DailySalesResponse is today's selling count and total
type DailySalesResponse struct {
	Count          int             `json:"count"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"totalFormatted"`
}

// DashboardResponse carries the KPI cards of the dashboard
type DashboardResponse struct {
	TotalSales          decimal.Decimal          `json:"totalSales"`
	TotalReceivable     decimal.Decimal          `json:"totalReceivable"`
	TotalPayable        decimal.Decimal          `json:"totalPayable"`
	CashInHand          decimal.Decimal          `json:"cashInHand"`
	TodaySales          DailySalesResponse       `json:"todaySales"`
	UnreadNotifications int                      `json:"unreadNotifications"`
	Monthly             []MonthlySummaryResponse `json:"monthly"`
	Formatted           map[string]string        `json:"formatted"`
}

// ToBusinessReportResponse converts a domain.BusinessReport to a DTO response
func ToBusinessReportResponse(r *domain.BusinessReport, p Presenter) BusinessReportResponse {
	return BusinessReportResponse{
		TotalSales:      r.TotalSales,
		TotalPurchases:  r.TotalPurchases,
		TotalExpenses:   r.TotalExpenses,
		Profit:          r.Profit,
		TotalReceivable: r.TotalReceivable,
		TotalPayable:    r.TotalPayable,
		NetBalance:      r.NetBalance,
		CashInHand:      r.CashInHand,
		GeneratedAt:     p.Local(r.GeneratedAt),
		GeneratedAtBS:   p.Date(r.GeneratedAt),
		Formatted: map[string]string{
			"totalSales":      p.Money(r.TotalSales),
			"totalPurchases":  p.Money(r.TotalPurchases),
			"totalExpenses":   p.Money(r.TotalExpenses),
			"profit":          p.Money(r.Profit),
			"totalReceivable": p.Money(r.TotalReceivable),
			"totalPayable":    p.Money(r.TotalPayable),
			"netBalance":      p.Money(r.NetBalance),
			"cashInHand":      p.Money(r.CashInHand),
		},
	}
}

// ToMonthlySummaryResponse converts the monthly series
func ToMonthlySummaryResponse(monthly []domain.MonthlySummary) []MonthlySummaryResponse {
	res := make([]MonthlySummaryResponse, len(monthly))
	for i, m := range monthly {
		res[i] = MonthlySummaryResponse(m)
	}
	return res
}

// ToDashboardResponse converts a domain.DashboardSummary to a DTO response
func ToDashboardResponse(d *domain.DashboardSummary, p Presenter) DashboardResponse {
	return DashboardResponse{
		TotalSales:      d.TotalSales,
		TotalReceivable: d.TotalReceivable,
		TotalPayable:    d.TotalPayable,
		CashInHand:      d.CashInHand,
		TodaySales: DailySalesResponse{
			Count:          d.TodaySales.Count,
			Total:          d.TodaySales.Total,
			TotalFormatted: p.Money(d.TodaySales.Total),
		},
		UnreadNotifications: d.UnreadNotifications,
		Monthly:             ToMonthlySummaryResponse(d.Monthly),
		Formatted: map[string]string{
			"totalSales":      p.Money(d.TotalSales),
			"totalReceivable": p.Money(d.TotalReceivable),
			"totalPayable":    p.Money(d.TotalPayable),
			"cashInHand":      p.Money(d.CashInHand),
		},
	}
}
