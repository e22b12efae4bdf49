package domain

import "github.com/shopspring/decimal"

// PartyType distinguishes customers from suppliers.
type PartyType string

const (
	Customer PartyType = "customer"
	Supplier PartyType = "supplier"
)

// IsValid reports whether t is a known party type.
func (t PartyType) IsValid() bool {
	return t == Customer || t == Supplier
}

// Party is a customer or supplier counterparty.
// Balance is the opening-balance seed of the party's ledger: positive means the
// party owes the business, negative means the business owes the party.
type Party struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Type    PartyType       `json:"type"`
	Phone   string          `json:"phone,omitempty"`
	Email   string          `json:"email,omitempty"`
	Address string          `json:"address,omitempty"`
	Balance decimal.Decimal `json:"balance"`
}
