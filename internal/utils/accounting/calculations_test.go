package accounting

import (
	"testing"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestItemTotal(t *testing.T) {
	tests := []struct {
		name string
		item domain.TransactionItem
		want string
	}{
		{"plain", domain.TransactionItem{Quantity: dec("3"), Price: dec("25")}, "75"},
		{"with tax", domain.TransactionItem{Quantity: dec("2"), Price: dec("100"), Tax: dec("13")}, "226"},
		{"with tax and discount", domain.TransactionItem{Quantity: dec("2"), Price: dec("100"), Tax: dec("13"), Discount: dec("6")}, "220"},
		{"fractional quantity", domain.TransactionItem{Quantity: dec("1.5"), Price: dec("40")}, "60"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, dec(tt.want).Equal(ItemTotal(tt.item)), "got %s", ItemTotal(tt.item))
		})
	}
}

func TestPriceItems_IgnoresClientTotals(t *testing.T) {
	items := []domain.TransactionItem{
		{Name: "rice", Quantity: dec("2"), Price: dec("50"), Total: dec("999")},
		{Name: "oil", Quantity: dec("1"), Price: dec("30")},
	}

	priced, sum, err := PriceItems(items)
	require.NoError(t, err)
	assert.True(t, dec("100").Equal(priced[0].Total))
	assert.True(t, dec("30").Equal(priced[1].Total))
	assert.True(t, dec("130").Equal(sum))
	assert.True(t, dec("999").Equal(items[0].Total), "input must not be modified")
}

func TestPriceItems_RejectsInvalidLines(t *testing.T) {
	_, _, err := PriceItems([]domain.TransactionItem{{Name: "zero", Quantity: decimal.Zero, Price: dec("1")}})
	assert.Error(t, err)

	_, _, err = PriceItems([]domain.TransactionItem{{Name: "neg", Quantity: dec("1"), Price: dec("1"), Discount: dec("-1")}})
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	amount := dec("50")
	for _, tt := range []struct {
		txType         domain.TransactionType
		debit, credit  decimal.Decimal
	}{
		{domain.TxSelling, amount, decimal.Zero},
		{domain.TxPurchase, decimal.Zero, amount},
		{domain.TxExpense, decimal.Zero, amount},
		{domain.TxPaymentIn, decimal.Zero, decimal.Zero},
		{domain.TxPaymentOut, decimal.Zero, decimal.Zero},
		{domain.TxQuotation, decimal.Zero, decimal.Zero},
		{domain.TxSalesReturn, decimal.Zero, decimal.Zero},
	} {
		debit, credit := Classify(domain.Transaction{Type: tt.txType, Amount: amount})
		assert.True(t, tt.debit.Equal(debit), "%s debit", tt.txType)
		assert.True(t, tt.credit.Equal(credit), "%s credit", tt.txType)
	}
}

func TestSplitBalances(t *testing.T) {
	receivable, payable := SplitBalances([]domain.Party{
		{Balance: dec("300")},
		{Balance: dec("-120")},
		{Balance: decimal.Zero},
		{Balance: dec("50.5")},
		{Balance: dec("-0.5")},
	})
	assert.True(t, dec("350.5").Equal(receivable))
	assert.True(t, dec("120.5").Equal(payable))
}
