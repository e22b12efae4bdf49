package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/pasale_ledger/internal/apperrors"
	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pasale_ledger/internal/core/ports/services"
	"github.com/SscSPs/pasale_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ParseLedgerFilter builds a filter from raw query values. Empty strings mean
// "no filter". Dates are YYYY-MM-DD calendar days in loc.
func ParseLedgerFilter(dateFrom, dateTo, ledgerType, search string, loc *time.Location) (domain.LedgerFilter, error) {
	var f domain.LedgerFilter

	from, to, err := parseDateRange(dateFrom, dateTo, loc)
	if err != nil {
		return f, err
	}
	f.DateFrom, f.DateTo = from, to

	f.Type = domain.LedgerType(strings.ToLower(strings.TrimSpace(ledgerType)))
	if f.Type == "" {
		f.Type = domain.LedgerAll
	}
	if !f.Type.IsValid() {
		return f, fmt.Errorf("%w: type must be one of all, selling, purchase, expense", apperrors.ErrValidation)
	}

	f.SearchText = strings.TrimSpace(search)
	return f, nil
}

// matches applies every set criterion of f to tx.
func matches(tx domain.Transaction, f domain.LedgerFilter) bool {
	if f.DateFrom != nil && tx.Date.Before(startOfDay(*f.DateFrom)) {
		return false
	}
	if f.DateTo != nil && tx.Date.After(endOfDay(*f.DateTo)) {
		return false
	}
	if f.Type != "" && f.Type != domain.LedgerAll && string(tx.Type) != string(f.Type) {
		return false
	}
	if f.SearchText != "" && !strings.Contains(strings.ToLower(tx.Description), strings.ToLower(f.SearchText)) {
		return false
	}
	return true
}

// ProjectLedger folds the party's transactions into a running-balance ledger.
// transactions is the full collection in insertion order; entries sharing a
// date keep that order. The balance starts at party.Balance.
func ProjectLedger(party domain.Party, transactions []domain.Transaction, filter domain.LedgerFilter) domain.Ledger {
	selected := make([]domain.Transaction, 0)
	for _, tx := range transactions {
		if tx.BelongsTo(party) && matches(tx, filter) {
			selected = append(selected, tx.Clone())
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Date.Before(selected[j].Date)
	})

	ledger := domain.Ledger{
		Party:          party,
		Entries:        make([]domain.LedgerEntry, 0, len(selected)),
		OpeningBalance: party.Balance,
		TotalDebit:     decimal.Zero,
		TotalCredit:    decimal.Zero,
	}

	running := party.Balance
	for _, tx := range selected {
		debit, credit := accounting.Classify(tx)
		running = running.Add(debit).Sub(credit)
		ledger.TotalDebit = ledger.TotalDebit.Add(debit)
		ledger.TotalCredit = ledger.TotalCredit.Add(credit)
		ledger.Entries = append(ledger.Entries, domain.LedgerEntry{
			Transaction: tx,
			Debit:       debit,
			Credit:      credit,
			Balance:     running,
		})
	}
	ledger.ClosingBalance = running
	return ledger
}

// ledgerService resolves parties from the store and projects their ledgers
type ledgerService struct {
	BaseService
	store portssvc.TransactionReaderSvc
}

// NewLedgerService creates a new ledger service over the store
func NewLedgerService(store portssvc.TransactionReaderSvc) portssvc.LedgerService {
	return &ledgerService{store: store}
}

// Ensure ledgerService implements the LedgerService interface
var _ portssvc.LedgerService = (*ledgerService)(nil)

// PartyLedger projects the ledger of one party.
func (s *ledgerService) PartyLedger(ctx context.Context, partyID string, filter domain.LedgerFilter) (*domain.Ledger, error) {
	party, transactions, err := s.store.PartyTransactions(ctx, partyID)
	if err != nil {
		s.LogDebug(ctx, "Ledger requested for unknown party", slog.String("party_id", partyID))
		return nil, err
	}

	ledger := ProjectLedger(*party, transactions, filter)

	s.LogInfo(ctx, "Party ledger projected",
		slog.String("party_id", partyID),
		slog.Int("entry_count", len(ledger.Entries)),
		slog.String("closing_balance", ledger.ClosingBalance.String()))
	return &ledger, nil
}
