package services_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/SscSPs/pasale_ledger/internal/apperrors"
	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/SscSPs/pasale_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 12, 0, 0, 0, time.UTC)
}

func balances(l domain.Ledger) []string {
	out := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		out[i] = e.Balance.String()
	}
	return out
}

func entryIDs(l domain.Ledger) []string {
	out := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		out[i] = e.Transaction.ID
	}
	return out
}

func TestProjectLedger_RunningBalance(t *testing.T) {
	party := domain.Party{ID: "p1", Name: "Acme", Type: domain.Customer, Balance: dec("100")}
	// insertion order differs from date order
	txs := []domain.Transaction{
		{ID: "c", Type: domain.TxPurchase, Amount: dec("20"), Date: day(3), PartyID: "p1"},
		{ID: "a", Type: domain.TxSelling, Amount: dec("50"), Date: day(1), PartyID: "p1"},
		{ID: "b", Type: domain.TxPurchase, Amount: dec("30"), Date: day(2), PartyID: "p1"},
	}

	ledger := services.ProjectLedger(party, txs, domain.LedgerFilter{})

	assert.Equal(t, []string{"a", "b", "c"}, entryIDs(ledger))
	assert.Equal(t, []string{"150", "120", "100"}, balances(ledger))
	assert.True(t, dec("100").Equal(ledger.OpeningBalance))
	assert.True(t, dec("100").Equal(ledger.ClosingBalance))
	assert.True(t, dec("50").Equal(ledger.TotalDebit))
	assert.True(t, dec("50").Equal(ledger.TotalCredit))
	assert.True(t, dec("50").Equal(ledger.Entries[0].Debit))
	assert.True(t, ledger.Entries[0].Credit.IsZero())
}

func TestProjectLedger_PaymentInDoesNotMoveBalance(t *testing.T) {
	party := domain.Party{ID: "p1", Name: "Acme", Type: domain.Customer, Balance: decimal.Zero}
	txs := []domain.Transaction{
		{ID: "t1", Type: domain.TxSelling, Amount: dec("200"), Date: day(1), PartyID: "p1"},
		{ID: "t2", Type: domain.TxPaymentIn, Amount: dec("50"), Date: day(2), PartyID: "p1"},
	}

	ledger := services.ProjectLedger(party, txs, domain.LedgerFilter{})

	require.Len(t, ledger.Entries, 2)
	assert.Equal(t, []string{"200", "200"}, balances(ledger))
	assert.True(t, dec("200").Equal(ledger.ClosingBalance))
	assert.True(t, ledger.Entries[1].Debit.IsZero())
	assert.True(t, ledger.Entries[1].Credit.IsZero())
}

func TestProjectLedger_FilterComposition(t *testing.T) {
	party := domain.Party{ID: "p1", Name: "Acme", Type: domain.Customer}
	txs := []domain.Transaction{
		{ID: "s1", Type: domain.TxSelling, Amount: dec("10"), Date: day(1), PartyID: "p1", Description: "Rice"},
		{ID: "p1", Type: domain.TxPurchase, Amount: dec("5"), Date: day(1), PartyID: "p1"},
		{ID: "s2", Type: domain.TxSelling, Amount: dec("20"), Date: day(2), PartyID: "p1", Description: "rice bag"},
		{ID: "p2", Type: domain.TxPurchase, Amount: dec("7"), Date: day(2), PartyID: "p1"},
		{ID: "s3", Type: domain.TxSelling, Amount: dec("30"), Date: day(3), PartyID: "p1", Description: "Oil"},
	}
	from := day(2)

	ledger := services.ProjectLedger(party, txs, domain.LedgerFilter{Type: domain.LedgerSelling, DateFrom: &from})
	assert.Equal(t, []string{"s2", "s3"}, entryIDs(ledger))
	assert.Equal(t, []string{"20", "50"}, balances(ledger))

	ledger = services.ProjectLedger(party, txs, domain.LedgerFilter{SearchText: "RICE"})
	assert.Equal(t, []string{"s1", "s2"}, entryIDs(ledger))

	to := day(1)
	ledger = services.ProjectLedger(party, txs, domain.LedgerFilter{DateTo: &to, Type: domain.LedgerAll})
	assert.Equal(t, []string{"s1", "p1"}, entryIDs(ledger))
}

func TestProjectLedger_EmptyResultKeepsOpeningBalance(t *testing.T) {
	party := domain.Party{ID: "p1", Name: "Acme", Type: domain.Supplier, Balance: dec("-40")}
	txs := []domain.Transaction{
		{ID: "x", Type: domain.TxSelling, Amount: dec("10"), Date: day(1), PartyID: "other"},
	}

	ledger := services.ProjectLedger(party, txs, domain.LedgerFilter{})

	assert.Empty(t, ledger.Entries)
	assert.True(t, dec("-40").Equal(ledger.ClosingBalance))
	assert.True(t, ledger.TotalDebit.IsZero())
}

func TestProjectLedger_SameDateKeepsInsertionOrder(t *testing.T) {
	party := domain.Party{ID: "p1", Name: "Acme", Type: domain.Customer}
	txs := []domain.Transaction{
		{ID: "first", Type: domain.TxSelling, Amount: dec("1"), Date: day(5), PartyID: "p1"},
		{ID: "second", Type: domain.TxSelling, Amount: dec("2"), Date: day(5), PartyID: "p1"},
		{ID: "third", Type: domain.TxSelling, Amount: dec("3"), Date: day(5), PartyID: "p1"},
	}

	ledger := services.ProjectLedger(party, txs, domain.LedgerFilter{})
	assert.Equal(t, []string{"first", "second", "third"}, entryIDs(ledger))
}

func TestProjectLedger_NameFallback(t *testing.T) {
	party := domain.Party{ID: "p1", Name: "Acme Traders", Type: domain.Customer}
	txs := []domain.Transaction{
		{ID: "byName", Type: domain.TxSelling, Amount: dec("5"), Date: day(1), PartyName: "acme traders"},
		{ID: "otherID", Type: domain.TxSelling, Amount: dec("5"), Date: day(2), PartyID: "p2", PartyName: "Acme Traders"},
		{ID: "noParty", Type: domain.TxSelling, Amount: dec("5"), Date: day(3)},
	}

	ledger := services.ProjectLedger(party, txs, domain.LedgerFilter{})
	assert.Equal(t, []string{"byName"}, entryIDs(ledger))
}

func TestProjectLedger_DoesNotMutateInput(t *testing.T) {
	party := domain.Party{ID: "p1", Name: "Acme", Type: domain.Customer}
	txs := []domain.Transaction{
		{ID: "b", Type: domain.TxSelling, Amount: dec("1"), Date: day(2), PartyID: "p1"},
		{ID: "a", Type: domain.TxSelling, Amount: dec("1"), Date: day(1), PartyID: "p1"},
	}

	services.ProjectLedger(party, txs, domain.LedgerFilter{})
	assert.Equal(t, "b", txs[0].ID)
}

func TestProjectLedger_ClosingIndependentOfInsertionOrder(t *testing.T) {
	party := domain.Party{ID: "p1", Name: "Acme", Type: domain.Customer, Balance: dec("10")}
	types := []domain.TransactionType{domain.TxSelling, domain.TxPurchase, domain.TxExpense, domain.TxPaymentOut}
	rng := rand.New(rand.NewSource(7))

	txs := make([]domain.Transaction, 40)
	for i := range txs {
		txs[i] = domain.Transaction{
			ID:      fmt.Sprintf("t%d", i),
			Type:    types[rng.Intn(len(types))],
			Amount:  decimal.NewFromInt(int64(rng.Intn(500))),
			Date:    day(1 + i%28),
			PartyID: "p1",
		}
	}
	want := services.ProjectLedger(party, txs, domain.LedgerFilter{}).ClosingBalance

	rng.Shuffle(len(txs), func(i, j int) { txs[i], txs[j] = txs[j], txs[i] })
	got := services.ProjectLedger(party, txs, domain.LedgerFilter{}).ClosingBalance

	assert.True(t, want.Equal(got), "want %s got %s", want, got)
}

func TestParseLedgerFilter(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kathmandu")
	require.NoError(t, err)

	f, err := services.ParseLedgerFilter("", "", "", "  ", loc)
	require.NoError(t, err)
	assert.Nil(t, f.DateFrom)
	assert.Nil(t, f.DateTo)
	assert.Equal(t, domain.LedgerAll, f.Type)
	assert.Empty(t, f.SearchText)

	f, err = services.ParseLedgerFilter("2024-01-02", "2024-01-31", "Selling", "rice", loc)
	require.NoError(t, err)
	require.NotNil(t, f.DateFrom)
	assert.Equal(t, time.Date(2024, time.January, 2, 0, 0, 0, 0, loc), *f.DateFrom)
	assert.Equal(t, domain.LedgerSelling, f.Type)
	assert.Equal(t, "rice", f.SearchText)

	tests := []struct {
		name, from, to, typ string
	}{
		{"bad from", "02/01/2024", "", ""},
		{"bad to", "", "2024-13-01", ""},
		{"reversed range", "2024-02-01", "2024-01-01", ""},
		{"unknown type", "", "", "payment_in"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.ParseLedgerFilter(tt.from, tt.to, tt.typ, "", loc)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
		})
	}
}

func TestParseLedgerFilter_DateToIsInclusive(t *testing.T) {
	party := domain.Party{ID: "p1", Name: "Acme", Type: domain.Customer}
	late := time.Date(2024, time.January, 31, 23, 59, 0, 0, time.UTC)
	txs := []domain.Transaction{{ID: "late", Type: domain.TxSelling, Amount: dec("1"), Date: late, PartyID: "p1"}}

	f, err := services.ParseLedgerFilter("2024-01-31", "2024-01-31", "", "", time.UTC)
	require.NoError(t, err)

	ledger := services.ProjectLedger(party, txs, f)
	assert.Equal(t, []string{"late"}, entryIDs(ledger))
}

func TestLedgerService_PartyLedger(t *testing.T) {
	ctx := context.Background()
	store := services.NewStoreService(ctx, &memoryRepository{})
	_, err := store.AddParty(ctx, domain.Party{ID: "p1", Name: "Acme", Type: domain.Customer})
	require.NoError(t, err)
	_, err = store.AddTransaction(ctx, domain.Transaction{ID: "t1", Type: domain.TxSelling, Amount: dec("200"), Date: day(1), PartyID: "p1"})
	require.NoError(t, err)
	_, err = store.AddTransaction(ctx, domain.Transaction{ID: "t2", Type: domain.TxPaymentIn, Amount: dec("50"), Date: day(2), PartyID: "p1"})
	require.NoError(t, err)

	svc := services.NewLedgerService(store)

	ledger, err := svc.PartyLedger(ctx, "p1", domain.LedgerFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"200", "200"}, balances(*ledger))
	assert.True(t, dec("200").Equal(ledger.ClosingBalance))

	_, err = svc.PartyLedger(ctx, "ghost", domain.LedgerFilter{})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
