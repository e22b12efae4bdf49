package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/pasale_ledger/internal/apperrors"
	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pasale_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pasale_ledger/internal/core/ports/services"
	"github.com/SscSPs/pasale_ledger/internal/utils"
	"github.com/SscSPs/pasale_ledger/internal/utils/accounting"
	"github.com/SscSPs/pasale_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// storeService is the single owner of the ledger collections. Every exported
// method takes the lock, so callers never observe a half-applied write.
type storeService struct {
	BaseService
	repo portsrepo.SnapshotRepository

	mu            sync.RWMutex
	transactions  *orderedIndex[domain.Transaction]
	parties       *orderedIndex[domain.Party]
	expenses      *orderedIndex[domain.Expense]
	notifications *orderedIndex[domain.Notification]

	now   func() time.Time
	newID func() string
}

// StoreServiceOption is a functional option for configuring the store service
type StoreServiceOption func(*storeService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) StoreServiceOption {
	return func(s *storeService) {
		s.now = now
	}
}

// WithIDGenerator replaces the id source used for records posted without an id.
func WithIDGenerator(newID func() string) StoreServiceOption {
	return func(s *storeService) {
		s.newID = newID
	}
}

// NewStoreService creates the store and loads its state from repo. A missing
// or malformed snapshot starts the store empty; the failure is only logged.
func NewStoreService(ctx context.Context, repo portsrepo.SnapshotRepository, options ...StoreServiceOption) portssvc.StoreSvcFacade {
	s := &storeService{
		repo:          repo,
		transactions:  newOrderedIndex[domain.Transaction](func(t domain.Transaction) string { return t.ID }, domain.Transaction.Clone),
		parties:       newOrderedIndex[domain.Party](func(p domain.Party) string { return p.ID }, nil),
		expenses:      newOrderedIndex[domain.Expense](func(e domain.Expense) string { return e.ID }, nil),
		notifications: newOrderedIndex[domain.Notification](func(n domain.Notification) string { return n.ID }, nil),
		now:           time.Now,
		newID:         utils.NewID,
	}
	for _, option := range options {
		option(s)
	}

	snapshot, err := repo.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrCorruptSnapshot) {
			s.LogWarn(ctx, err, "Stored snapshot is malformed, starting with an empty store")
		} else {
			s.LogError(ctx, err, "Failed to load snapshot, starting with an empty store")
		}
		snapshot = domain.Snapshot{}
	}
	s.restore(snapshot)

	s.LogInfo(ctx, "Store loaded",
		slog.Int("transactions", s.transactions.len()),
		slog.Int("parties", s.parties.len()),
		slog.Int("expenses", s.expenses.len()),
		slog.Int("notifications", s.notifications.len()))
	return s
}

// Ensure storeService implements the StoreSvcFacade interface
var _ portssvc.StoreSvcFacade = (*storeService)(nil)

// restore loads a snapshot; newest-first collections are flipped to insertion order.
func (s *storeService) restore(snapshot domain.Snapshot) {
	s.transactions.load(reversed(snapshot.Transactions))
	s.parties.load(snapshot.Parties)
	s.expenses.load(reversed(snapshot.Expenses))
	s.notifications.load(reversed(snapshot.Notifications))
}

// snapshotLocked copies the state in stored order. Callers hold s.mu.
func (s *storeService) snapshotLocked() domain.Snapshot {
	return domain.Snapshot{
		Transactions:  s.transactions.descending(),
		Parties:       s.parties.ascending(),
		Expenses:      s.expenses.descending(),
		Notifications: s.notifications.descending(),
	}
}

// persistLocked writes the whole snapshot through to the repository. Failures
// are logged and swallowed: memory stays authoritative. Callers hold s.mu.
func (s *storeService) persistLocked(ctx context.Context, op string) {
	if err := s.repo.Save(ctx, s.snapshotLocked()); err != nil {
		s.LogError(ctx, err, "Failed to persist snapshot", slog.String("operation", op))
	}
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}

// normalizeTransaction validates tx and enforces the amount invariant.
func (s *storeService) normalizeTransaction(tx domain.Transaction) (domain.Transaction, error) {
	if !tx.Type.IsValid() {
		return tx, validationError("unknown transaction type %q", tx.Type)
	}
	if tx.Date.IsZero() {
		tx.Date = s.now()
	}
	tx.Description = strings.TrimSpace(tx.Description)
	tx.PartyName = strings.TrimSpace(tx.PartyName)

	if tx.HasItems() {
		for i := range tx.Items {
			if tx.Items[i].ID == "" {
				tx.Items[i].ID = s.newID()
			}
		}
		priced, sum, err := accounting.PriceItems(tx.Items)
		if err != nil {
			return tx, validationError("%s", err.Error())
		}
		tx.Items, tx.Amount = priced, sum
	}
	if tx.Amount.IsNegative() {
		return tx, validationError("amount must not be negative")
	}
	return tx, nil
}

// AddTransaction stores tx at the head of the collection.
func (s *storeService) AddTransaction(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error) {
	tx = tx.Clone()
	if tx.ID == "" {
		tx.ID = s.newID()
	}
	tx, err := s.normalizeTransaction(tx)
	if err != nil {
		s.LogWarn(ctx, err, "Rejected transaction", slog.String("transaction_id", tx.ID))
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.transactions.has(tx.ID) {
		return nil, fmt.Errorf("transaction %s: %w", tx.ID, apperrors.ErrDuplicate)
	}
	s.transactions.add(tx)
	s.notifications.add(s.newNotification(
		"New Transaction",
		fmt.Sprintf("%s of Rs. %s", tx.Type, tx.Amount.String()),
		domain.NotificationInfo,
	))
	s.persistLocked(ctx, "add_transaction")

	s.LogInfo(ctx, "Transaction added",
		slog.String("transaction_id", tx.ID),
		slog.String("type", string(tx.Type)),
		slog.String("amount", tx.Amount.String()))
	return &tx, nil
}

// UpdateTransaction merges patch onto an existing record.
func (s *storeService) UpdateTransaction(ctx context.Context, id string, patch domain.TransactionPatch) (*domain.Transaction, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.transactions.get(id)
	if !ok {
		s.LogDebug(ctx, "Update of unknown transaction ignored", slog.String("transaction_id", id))
		return nil, false, nil
	}

	updated, err := s.normalizeTransaction(patch.Apply(current))
	if err != nil {
		return nil, true, err
	}
	s.transactions.replace(updated)
	s.persistLocked(ctx, "update_transaction")

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", id))
	return &updated, true, nil
}

// DeleteTransaction removes a record; unknown ids are a no-op.
func (s *storeService) DeleteTransaction(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.transactions.remove(id) {
		s.LogDebug(ctx, "Delete of unknown transaction ignored", slog.String("transaction_id", id))
		return false
	}
	s.persistLocked(ctx, "delete_transaction")
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", id))
	return true
}

// GetTransaction returns a copy of one transaction.
func (s *storeService) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.transactions.get(id)
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", id, apperrors.ErrNotFound)
	}
	return &tx, nil
}

// ListTransactions pages through the transactions matching filter, newest first.
func (s *storeService) ListTransactions(ctx context.Context, filter domain.LedgerFilter, limit int, nextToken string) ([]domain.Transaction, string, error) {
	s.mu.RLock()
	all := s.transactions.descending()
	s.mu.RUnlock()

	selected := all[:0]
	for _, tx := range all {
		if matches(tx, filter) {
			selected = append(selected, tx)
		}
	}

	page, next, err := pagination.Page(selected, func(t domain.Transaction) string { return t.ID }, limit, nextToken)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return page, next, nil
}

// PartyTransactions returns a party and every transaction in insertion order.
func (s *storeService) PartyTransactions(ctx context.Context, partyID string) (*domain.Party, []domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	party, ok := s.parties.get(partyID)
	if !ok {
		return nil, nil, fmt.Errorf("party %s: %w", partyID, apperrors.ErrNotFound)
	}
	return &party, s.transactions.ascending(), nil
}

func normalizeParty(p domain.Party) (domain.Party, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return p, validationError("party name is required")
	}
	if !p.Type.IsValid() {
		return p, validationError("unknown party type %q", p.Type)
	}
	return p, nil
}

// AddParty inserts or replaces a party by id.
func (s *storeService) AddParty(ctx context.Context, party domain.Party) (*domain.Party, error) {
	party, err := normalizeParty(party)
	if err != nil {
		return nil, err
	}
	if party.ID == "" {
		party.ID = s.newID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.parties.upsert(party)
	s.persistLocked(ctx, "add_party")

	s.LogInfo(ctx, "Party saved", slog.String("party_id", party.ID), slog.String("type", string(party.Type)))
	return &party, nil
}

// UpdateParty replaces an existing party and returns the stored, normalized
// record; unknown ids are a no-op.
func (s *storeService) UpdateParty(ctx context.Context, party domain.Party) (*domain.Party, bool, error) {
	party, err := normalizeParty(party)
	if err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.parties.replace(party) {
		s.LogDebug(ctx, "Update of unknown party ignored", slog.String("party_id", party.ID))
		return nil, false, nil
	}
	s.persistLocked(ctx, "update_party")

	s.LogInfo(ctx, "Party updated", slog.String("party_id", party.ID))
	return &party, true, nil
}

// GetParty returns a copy of one party.
func (s *storeService) GetParty(ctx context.Context, id string) (*domain.Party, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	party, ok := s.parties.get(id)
	if !ok {
		return nil, fmt.Errorf("party %s: %w", id, apperrors.ErrNotFound)
	}
	return &party, nil
}

// ListParties returns every party in insertion order.
func (s *storeService) ListParties(ctx context.Context) []domain.Party {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parties.ascending()
}

// PartySummary aggregates the transactions matched to a party.
func (s *storeService) PartySummary(ctx context.Context, partyID string) (*domain.PartySummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	party, ok := s.parties.get(partyID)
	if !ok {
		return nil, fmt.Errorf("party %s: %w", partyID, apperrors.ErrNotFound)
	}

	summary := &domain.PartySummary{Party: party, TotalSales: decimal.Zero, TotalPurchases: decimal.Zero}
	s.transactions.each(func(tx domain.Transaction) {
		if !tx.BelongsTo(party) {
			return
		}
		summary.TransactionCount++
		switch tx.Type {
		case domain.TxSelling:
			summary.TotalSales = summary.TotalSales.Add(tx.Amount)
		case domain.TxPurchase:
			summary.TotalPurchases = summary.TotalPurchases.Add(tx.Amount)
		}
		if summary.LastTransaction == nil || tx.Date.After(*summary.LastTransaction) {
			d := tx.Date
			summary.LastTransaction = &d
		}
	})
	summary.Balance = summary.TotalSales.Sub(summary.TotalPurchases)
	return summary, nil
}

// AddExpense stores an expense at the head of the collection.
func (s *storeService) AddExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	expense.Category = strings.TrimSpace(expense.Category)
	if expense.Category == "" {
		return nil, validationError("expense category is required")
	}
	if expense.Amount.IsNegative() {
		return nil, validationError("amount must not be negative")
	}
	if expense.ID == "" {
		expense.ID = s.newID()
	}
	if expense.Date.IsZero() {
		expense.Date = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.expenses.has(expense.ID) {
		return nil, fmt.Errorf("expense %s: %w", expense.ID, apperrors.ErrDuplicate)
	}
	s.expenses.add(expense)
	s.persistLocked(ctx, "add_expense")

	s.LogInfo(ctx, "Expense added", slog.String("expense_id", expense.ID), slog.String("amount", expense.Amount.String()))
	return &expense, nil
}

// ListExpenses returns the expenses matching filter, newest first.
func (s *storeService) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) []domain.Expense {
	s.mu.RLock()
	all := s.expenses.descending()
	s.mu.RUnlock()

	selected := make([]domain.Expense, 0, len(all))
	for _, e := range all {
		if matchesExpense(e, filter) {
			selected = append(selected, e)
		}
	}
	return selected
}

// ExpenseBreakdown totals the expenses matching filter.
func (s *storeService) ExpenseBreakdown(ctx context.Context, filter domain.ExpenseFilter) domain.ExpenseBreakdown {
	return breakdown(s.ListExpenses(ctx, filter))
}

func (s *storeService) newNotification(title, message string, t domain.NotificationType) domain.Notification {
	return domain.Notification{
		ID:      s.newID(),
		Title:   title,
		Message: message,
		Type:    t,
		Date:    s.now(),
		Read:    false,
	}
}

// AddNotification creates an unread notification and prepends it.
func (s *storeService) AddNotification(ctx context.Context, title, message string, notificationType domain.NotificationType) (*domain.Notification, error) {
	if !notificationType.IsValid() {
		return nil, validationError("unknown notification type %q", notificationType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.newNotification(title, message, notificationType)
	s.notifications.add(n)
	s.persistLocked(ctx, "add_notification")
	return &n, nil
}

// MarkNotificationAsRead sets read=true; unknown ids are a no-op.
func (s *storeService) MarkNotificationAsRead(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications.get(id)
	if !ok {
		return false
	}
	n.Read = true
	s.notifications.replace(n)
	s.persistLocked(ctx, "mark_notification_read")
	return true
}

// DismissNotification removes a notification; unknown ids are a no-op.
func (s *storeService) DismissNotification(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.notifications.remove(id) {
		return false
	}
	s.persistLocked(ctx, "dismiss_notification")
	return true
}

// ListNotifications returns every notification newest first.
func (s *storeService) ListNotifications(ctx context.Context) []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notifications.descending()
}

// UnreadNotificationCount counts notifications not yet read.
func (s *storeService) UnreadNotificationCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unread := 0
	s.notifications.each(func(n domain.Notification) {
		if !n.Read {
			unread++
		}
	})
	return unread
}

func (s *storeService) sumType(t domain.TransactionType) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return accounting.SumByType(s.transactions.items, t)
}

// TotalSales sums the amount of selling transactions.
func (s *storeService) TotalSales(ctx context.Context) decimal.Decimal {
	return s.sumType(domain.TxSelling)
}

// TotalPurchases sums the amount of purchase transactions.
func (s *storeService) TotalPurchases(ctx context.Context) decimal.Decimal {
	return s.sumType(domain.TxPurchase)
}

// TotalExpenses sums every expense.
func (s *storeService) TotalExpenses(ctx context.Context) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return accounting.SumExpenses(s.expenses.items)
}

// TotalReceivable sums positive party balances.
func (s *storeService) TotalReceivable(ctx context.Context) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	receivable, _ := accounting.SplitBalances(s.parties.items)
	return receivable
}

// TotalPayable sums the magnitude of negative party balances.
func (s *storeService) TotalPayable(ctx context.Context) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, payable := accounting.SplitBalances(s.parties.items)
	return payable
}

// CashInHand is sales minus purchases minus expenses.
func (s *storeService) CashInHand(ctx context.Context) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sales := accounting.SumByType(s.transactions.items, domain.TxSelling)
	purchases := accounting.SumByType(s.transactions.items, domain.TxPurchase)
	return sales.Sub(purchases).Sub(accounting.SumExpenses(s.expenses.items))
}

// MonthlySummary returns income and expense per month of now's year so far.
func (s *storeService) MonthlySummary(ctx context.Context, now time.Time) []domain.MonthlySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return monthlySummaries(s.transactions.items, s.expenses.items, now)
}

// TodaySales totals selling transactions on now's calendar day.
func (s *storeService) TodaySales(ctx context.Context, now time.Time) domain.DailySales {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return dailySales(s.transactions.items, now)
}

// Snapshot returns a deep copy of the state in stored order.
func (s *storeService) Snapshot(ctx context.Context) domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}
