package services

import (
	"context"
	"time"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransaction returns the transaction with id, or apperrors.ErrNotFound.
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)

	// ListTransactions returns one page of the transactions matching filter,
	// newest first, and the token for the next page.
	ListTransactions(ctx context.Context, filter domain.LedgerFilter, limit int, nextToken string) ([]domain.Transaction, string, error)

	// PartyTransactions returns a party together with the full transaction
	// collection in insertion order, read under one consistent view.
	PartyTransactions(ctx context.Context, partyID string) (*domain.Party, []domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// AddTransaction validates and stores tx at the head of the collection and
	// emits an info notification. Item totals and the amount are recomputed.
	AddTransaction(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error)

	// UpdateTransaction merges patch onto the record with id. found is false,
	// and nothing changes, when id is unknown.
	UpdateTransaction(ctx context.Context, id string, patch domain.TransactionPatch) (updated *domain.Transaction, found bool, err error)

	// DeleteTransaction removes the record with id. It reports whether a record was removed.
	DeleteTransaction(ctx context.Context, id string) bool
}

// PartySvc defines operations on parties
type PartySvc interface {
	// AddParty inserts the party, or replaces an existing one with the same id.
	AddParty(ctx context.Context, party domain.Party) (*domain.Party, error)

	// UpdateParty replaces the party with the same id and returns the stored
	// record. found is false when absent.
	UpdateParty(ctx context.Context, party domain.Party) (updated *domain.Party, found bool, err error)

	// GetParty returns the party with id, or apperrors.ErrNotFound.
	GetParty(ctx context.Context, id string) (*domain.Party, error)

	// ListParties returns every party in insertion order.
	ListParties(ctx context.Context) []domain.Party

	// PartySummary aggregates the transactions that belong to a party.
	PartySummary(ctx context.Context, partyID string) (*domain.PartySummary, error)
}

// ExpenseSvc defines operations on expenses
type ExpenseSvc interface {
	// AddExpense stores the expense at the head of the collection.
	AddExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)

	// ListExpenses returns the expenses matching filter, newest first.
	ListExpenses(ctx context.Context, filter domain.ExpenseFilter) []domain.Expense

	// ExpenseBreakdown totals the matching expenses overall, by necessity and by category.
	ExpenseBreakdown(ctx context.Context, filter domain.ExpenseFilter) domain.ExpenseBreakdown
}

// NotificationSvc defines the notification lifecycle
type NotificationSvc interface {
	AddNotification(ctx context.Context, title, message string, notificationType domain.NotificationType) (*domain.Notification, error)
	MarkNotificationAsRead(ctx context.Context, id string) bool
	DismissNotification(ctx context.Context, id string) bool
	ListNotifications(ctx context.Context) []domain.Notification
	UnreadNotificationCount(ctx context.Context) int
}

// AggregateSvc defines the derived queries over current store state.
// Every call recomputes from the collections.
type AggregateSvc interface {
	TotalSales(ctx context.Context) decimal.Decimal
	TotalPurchases(ctx context.Context) decimal.Decimal
	TotalExpenses(ctx context.Context) decimal.Decimal
	TotalReceivable(ctx context.Context) decimal.Decimal
	TotalPayable(ctx context.Context) decimal.Decimal
	CashInHand(ctx context.Context) decimal.Decimal

	// MonthlySummary returns one entry per month from January of now's year
	// through now's month.
	MonthlySummary(ctx context.Context, now time.Time) []domain.MonthlySummary

	// TodaySales returns the selling count and total on now's calendar day.
	TodaySales(ctx context.Context, now time.Time) domain.DailySales
}

// SnapshotSvc exposes a consistent copy of the whole store.
type SnapshotSvc interface {
	Snapshot(ctx context.Context) domain.Snapshot
}

// StoreSvcFacade combines all store-related service interfaces
// This is a facade for clients that need access to all operations
type StoreSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	PartySvc
	ExpenseSvc
	NotificationSvc
	AggregateSvc
	SnapshotSvc
}
