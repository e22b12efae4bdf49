package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the business category of a transaction.
type TransactionType string

const (
	TxPurchase       TransactionType = "purchase"
	TxSelling        TransactionType = "selling"
	TxExpense        TransactionType = "expense"
	TxPaymentIn      TransactionType = "payment_in"
	TxPaymentOut     TransactionType = "payment_out"
	TxQuotation      TransactionType = "quotation"
	TxSalesReturn    TransactionType = "sales_return"
	TxPurchaseReturn TransactionType = "purchase_return"
	TxIncome         TransactionType = "income"
)

// TransactionTypes lists every known transaction type.
var TransactionTypes = []TransactionType{
	TxPurchase, TxSelling, TxExpense, TxPaymentIn, TxPaymentOut, TxQuotation, TxSalesReturn, TxPurchaseReturn, TxIncome,
}

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	for _, known := range TransactionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// TransactionItem is one line of an itemised sale or purchase.
type TransactionItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"` // must be > 0
	Price    decimal.Decimal `json:"price"`
	Tax      decimal.Decimal `json:"tax"`      // percent of quantity*price
	Discount decimal.Decimal `json:"discount"` // absolute amount
	Total    decimal.Decimal `json:"total"`    // derived, never trusted from input
}

// Transaction is a single business event recorded in the store.
type Transaction struct {
	ID          string            `json:"id"`
	Type        TransactionType   `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Date        time.Time         `json:"date"`
	Description string            `json:"description"`
	PartyID     string            `json:"partyId,omitempty"`
	PartyName   string            `json:"partyName,omitempty"`
	Items       []TransactionItem `json:"items,omitempty"`
}

// HasItems reports whether the amount is derived from line items.
func (t Transaction) HasItems() bool {
	return len(t.Items) > 0
}

// Clone returns a copy that shares no slices with t.
func (t Transaction) Clone() Transaction {
	if t.Items != nil {
		items := make([]TransactionItem, len(t.Items))
		copy(items, t.Items)
		t.Items = items
	}
	return t
}

// BelongsTo applies the two-step party match: id first, then a case-insensitive
// name match for records that carry no party id.
func (t Transaction) BelongsTo(p Party) bool {
	if t.PartyID != "" {
		return t.PartyID == p.ID
	}
	return t.PartyName != "" && strings.EqualFold(t.PartyName, p.Name)
}

// TransactionPatch carries a partial update. Nil fields keep their prior value.
type TransactionPatch struct {
	Type        *TransactionType
	Amount      *decimal.Decimal
	Date        *time.Time
	Description *string
	PartyID     *string
	PartyName   *string
	Items       *[]TransactionItem
}

// Apply merges the patch onto tx and returns the result.
func (p TransactionPatch) Apply(tx Transaction) Transaction {
	if p.Type != nil {
		tx.Type = *p.Type
	}
	if p.Amount != nil {
		tx.Amount = *p.Amount
	}
	if p.Date != nil {
		tx.Date = *p.Date
	}
	if p.Description != nil {
		tx.Description = *p.Description
	}
	if p.PartyID != nil {
		tx.PartyID = *p.PartyID
	}
	if p.PartyName != nil {
		tx.PartyName = *p.PartyName
	}
	if p.Items != nil {
		items := make([]TransactionItem, len(*p.Items))
		copy(items, *p.Items)
		tx.Items = items
	}
	return tx
}
