package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BusinessReport holds the whole-business figures of the report page.
type BusinessReport struct {
	TotalSales      decimal.Decimal `json:"totalSales"`
	TotalPurchases  decimal.Decimal `json:"totalPurchases"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	Profit          decimal.Decimal `json:"profit"`
	TotalReceivable decimal.Decimal `json:"totalReceivable"`
	TotalPayable    decimal.Decimal `json:"totalPayable"`
	NetBalance      decimal.Decimal `json:"netBalance"`
	CashInHand      decimal.Decimal `json:"cashInHand"`
	GeneratedAt     time.Time       `json:"generatedAt"`
}

// MonthlySummary is one bar of the income/expense chart.
type MonthlySummary struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// PartySummary aggregates the transactions that match a party.
type PartySummary struct {
	Party            Party           `json:"party"`
	TotalSales       decimal.Decimal `json:"totalSales"`
	TotalPurchases   decimal.Decimal `json:"totalPurchases"`
	Balance          decimal.Decimal `json:"balance"` // sales minus purchases
	TransactionCount int             `json:"transactionCount"`
	LastTransaction  *time.Time      `json:"lastTransaction,omitempty"`
}

// DailySales is the count and total of sales on one calendar day.
type DailySales struct {
	Day   time.Time       `json:"day"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// DashboardSummary carries the KPI cards of the dashboard.
type DashboardSummary struct {
	TotalSales          decimal.Decimal  `json:"totalSales"`
	TotalReceivable     decimal.Decimal  `json:"totalReceivable"`
	TotalPayable        decimal.Decimal  `json:"totalPayable"`
	CashInHand          decimal.Decimal  `json:"cashInHand"`
	TodaySales          DailySales       `json:"todaySales"`
	UnreadNotifications int              `json:"unreadNotifications"`
	Monthly             []MonthlySummary `json:"monthly"`
}
