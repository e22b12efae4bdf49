package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerType restricts a ledger to one business type.
type LedgerType string

const (
	LedgerAll      LedgerType = "all"
	LedgerSelling  LedgerType = "selling"
	LedgerPurchase LedgerType = "purchase"
	LedgerExpense  LedgerType = "expense"
)

// IsValid reports whether t is an accepted ledger type filter.
func (t LedgerType) IsValid() bool {
	switch t {
	case LedgerAll, LedgerSelling, LedgerPurchase, LedgerExpense:
		return true
	}
	return false
}

// LedgerFilter narrows a party ledger, or the transaction list where Type may
// name any transaction type. Zero values mean "no filter" and all set criteria
// must hold.
type LedgerFilter struct {
	DateFrom   *time.Time // inclusive from the start of that day
	DateTo     *time.Time // inclusive through 23:59:59 of that day
	Type       LedgerType
	SearchText string
}

// LedgerEntry is a transaction seen from one party's ledger.
type LedgerEntry struct {
	Transaction Transaction     `json:"transaction"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// Ledger is the chronological running-balance view of a party.
type Ledger struct {
	Party          Party           `json:"party"`
	Entries        []LedgerEntry   `json:"entries"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
}
