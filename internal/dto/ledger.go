package dto

import (
	"time"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerParams defines query parameters for a party ledger. Empty values mean
// no filter.
type LedgerParams struct {
	DateFrom string `form:"dateFrom"`
	DateTo   string `form:"dateTo"`
	Type     string `form:"type"`
	Search   string `form:"search"`
	Lang     string `form:"lang"`
	Format   string `form:"format"`
}

// LedgerEntryResponse is one row of a party ledger.
type LedgerEntryResponse struct {
	TransactionID    string                 `json:"transactionId"`
	Type             domain.TransactionType `json:"type"`
	Date             time.Time              `json:"date"`
	DateBS           string                 `json:"dateBS"`
	Description      string                 `json:"description"`
	Debit            decimal.Decimal        `json:"debit"`
	Credit           decimal.Decimal        `json:"credit"`
	Balance          decimal.Decimal        `json:"balance"`
	BalanceFormatted string                 `json:"balanceFormatted"`
}

// LedgerResponse is the running-balance view of a party.
type LedgerResponse struct {
	Party          PartyResponse         `json:"party"`
	Entries        []LedgerEntryResponse `json:"entries"`
	OpeningBalance decimal.Decimal       `json:"openingBalance"`
	ClosingBalance decimal.Decimal       `json:"closingBalance"`
	TotalDebit     decimal.Decimal       `json:"totalDebit"`
	TotalCredit    decimal.Decimal       `json:"totalCredit"`
	Summary        struct {
		OpeningBalance string `json:"openingBalance"`
		ClosingBalance string `json:"closingBalance"`
		TotalDebit     string `json:"totalDebit"`
		TotalCredit    string `json:"totalCredit"`
	} `json:"summary"`
}

// ToLedgerResponse converts a domain.Ledger to LedgerResponse DTO
func ToLedgerResponse(l *domain.Ledger, p Presenter) LedgerResponse {
	resp := LedgerResponse{
		Party:          ToPartyResponse(&l.Party, p),
		Entries:        make([]LedgerEntryResponse, len(l.Entries)),
		OpeningBalance: l.OpeningBalance,
		ClosingBalance: l.ClosingBalance,
		TotalDebit:     l.TotalDebit,
		TotalCredit:    l.TotalCredit,
	}
	for i, e := range l.Entries {
		resp.Entries[i] = LedgerEntryResponse{
			TransactionID:    e.Transaction.ID,
			Type:             e.Transaction.Type,
			Date:             p.Local(e.Transaction.Date),
			DateBS:           p.Date(e.Transaction.Date),
			Description:      e.Transaction.Description,
			Debit:            e.Debit,
			Credit:           e.Credit,
			Balance:          e.Balance,
			BalanceFormatted: p.Money(e.Balance),
		}
	}
	resp.Summary.OpeningBalance = p.Money(l.OpeningBalance)
	resp.Summary.ClosingBalance = p.Money(l.ClosingBalance)
	resp.Summary.TotalDebit = p.Money(l.TotalDebit)
	resp.Summary.TotalCredit = p.Money(l.TotalCredit)
	return resp
}
