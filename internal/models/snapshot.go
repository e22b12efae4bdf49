package models

import "github.com/shopspring/decimal"

// SnapshotKey is the slot name the browser build used for its local blob.
const SnapshotKey = "pasale-data"

// Snapshot is the persisted JSON document holding the whole store.
type Snapshot struct {
	Transactions  []Transaction  `json:"transactions"`
	Parties       []Party        `json:"parties"`
	Expenses      []Expense      `json:"expenses"`
	Notifications []Notification `json:"notifications"`
}

// TransactionItem is the stored form of a transaction line.
type TransactionItem struct {
	ID       FlexID          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// Transaction is the stored form of a transaction.
type Transaction struct {
	ID          FlexID            `json:"id"`
	Type        string            `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Date        Timestamp         `json:"date"`
	Description string            `json:"description"`
	PartyID     FlexID            `json:"partyId,omitempty"`
	PartyName   string            `json:"partyName,omitempty"`
	Items       []TransactionItem `json:"items,omitempty"`
}

// Party is the stored form of a party.
type Party struct {
	ID      FlexID          `json:"id"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Phone   string          `json:"phone,omitempty"`
	Email   string          `json:"email,omitempty"`
	Address string          `json:"address,omitempty"`
	Balance decimal.Decimal `json:"balance"`
}

// Expense is the stored form of an expense.
type Expense struct {
	ID          FlexID          `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        Timestamp       `json:"date"`
	Description string          `json:"description"`
	IsNecessary bool            `json:"isNecessary"`
}

// Notification is the stored form of a notification.
type Notification struct {
	ID      FlexID    `json:"id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Type    string    `json:"type"`
	Date    Timestamp `json:"date"`
	Read    bool      `json:"read"`
}
