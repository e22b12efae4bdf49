package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/pasale_ledger/internal/apperrors"
	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() domain.Snapshot {
	day := time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)
	return domain.Snapshot{
		Transactions: []domain.Transaction{
			{
				ID: "t2", Type: domain.TxSelling, Amount: decimal.RequireFromString("226"), Date: day,
				Description: "bulk order", PartyID: "p1",
				Items: []domain.TransactionItem{{
					ID: "i1", Name: "rice", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(100),
					Tax: decimal.NewFromInt(13), Total: decimal.RequireFromString("226"),
				}},
			},
			{ID: "t1", Type: domain.TxPaymentIn, Amount: decimal.NewFromInt(50), Date: day.AddDate(0, 0, -1), PartyName: "Acme"},
		},
		Parties:       []domain.Party{{ID: "p1", Name: "Acme", Type: domain.Customer, Balance: decimal.NewFromInt(-40)}},
		Expenses:      []domain.Expense{{ID: "e1", Category: "rent", Amount: decimal.NewFromInt(1000), Date: day, IsNecessary: true}},
		Notifications: []domain.Notification{{ID: "n1", Title: "New Transaction", Message: "selling of Rs. 226", Type: domain.NotificationInfo, Date: day}},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	original := sampleSnapshot()

	data, err := EncodeSnapshot(original)
	require.NoError(t, err)

	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)

	again, err := EncodeSnapshot(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again), "re-encoding a decoded snapshot must be lossless")

	require.Len(t, decoded.Transactions, 2)
	assert.Equal(t, "t2", decoded.Transactions[0].ID, "order is preserved")
	assert.True(t, original.Transactions[0].Date.Equal(decoded.Transactions[0].Date))
	assert.True(t, decimal.RequireFromString("226").Equal(decoded.Transactions[0].Items[0].Total))
	assert.True(t, decimal.NewFromInt(-40).Equal(decoded.Parties[0].Balance))
	assert.True(t, decoded.Expenses[0].IsNecessary)
}

func TestDecodeSnapshot_LegacyBrowserShape(t *testing.T) {
	blob := `{
		"transactions": [{"id": 1704067200000, "type": "selling", "amount": 200, "date": "2024-01-01", "description": "", "partyId": "p1"}],
		"parties": [{"id": "p1", "name": "Acme", "type": "customer", "balance": 0}],
		"expenses": [],
		"notifications": [{"id": 1704067200001, "title": "New Transaction", "message": "selling of Rs. 200", "type": "info", "date": "2024-01-01T00:00:00.000Z", "read": false}]
	}`

	s, err := DecodeSnapshot([]byte(blob))
	require.NoError(t, err)
	require.Len(t, s.Transactions, 1)
	assert.Equal(t, "1704067200000", s.Transactions[0].ID)
	assert.True(t, decimal.NewFromInt(200).Equal(s.Transactions[0].Amount))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), s.Transactions[0].Date)
	assert.Equal(t, "1704067200001", s.Notifications[0].ID)
	assert.Empty(t, s.Expenses)
}

func TestDecodeSnapshot_Corrupt(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{"transactions": [`))
	assert.ErrorIs(t, err, apperrors.ErrCorruptSnapshot)

	_, err = DecodeSnapshot([]byte(`{"transactions": [{"date": "yesterday"}]}`))
	assert.ErrorIs(t, err, apperrors.ErrCorruptSnapshot)
}
