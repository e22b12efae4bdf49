package accounting

import (
	"fmt"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ItemTotal computes quantity*price plus tax percent on that base, minus the discount.
func ItemTotal(item domain.TransactionItem) decimal.Decimal {
	base := item.Quantity.Mul(item.Price)
	tax := base.Mul(item.Tax).Div(hundred)
	return base.Add(tax).Sub(item.Discount)
}

// PriceItems validates the items, recomputes every Total and returns the priced
// copy together with the sum of totals. The input slice is not modified.
func PriceItems(items []domain.TransactionItem) ([]domain.TransactionItem, decimal.Decimal, error) {
	priced := make([]domain.TransactionItem, len(items))
	sum := decimal.Zero
	for i, item := range items {
		if !item.Quantity.IsPositive() {
			return nil, decimal.Zero, fmt.Errorf("item %q: quantity must be positive", item.Name)
		}
		if item.Price.IsNegative() {
			return nil, decimal.Zero, fmt.Errorf("item %q: price must not be negative", item.Name)
		}
		if item.Tax.IsNegative() || item.Discount.IsNegative() {
			return nil, decimal.Zero, fmt.Errorf("item %q: tax and discount must not be negative", item.Name)
		}
		item.Total = ItemTotal(item)
		priced[i] = item
		sum = sum.Add(item.Total)
	}
	return priced, sum, nil
}

// Classify returns the ledger debit and credit of a transaction.
// Selling is a debit; purchase and expense are credits; every other type
// leaves the running balance untouched.
func Classify(tx domain.Transaction) (debit, credit decimal.Decimal) {
	switch tx.Type {
	case domain.TxSelling:
		return tx.Amount, decimal.Zero
	case domain.TxPurchase, domain.TxExpense:
		return decimal.Zero, tx.Amount
	default:
		return decimal.Zero, decimal.Zero
	}
}

// SumByType totals the amount of every transaction of the given type.
func SumByType(txs []domain.Transaction, txType domain.TransactionType) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		if tx.Type == txType {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}

// SumExpenses totals the amount of every expense.
func SumExpenses(expenses []domain.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// SplitBalances sums positive party balances as receivable and the magnitude of
// negative balances as payable.
func SplitBalances(parties []domain.Party) (receivable, payable decimal.Decimal) {
	receivable, payable = decimal.Zero, decimal.Zero
	for _, p := range parties {
		switch {
		case p.Balance.IsPositive():
			receivable = receivable.Add(p.Balance)
		case p.Balance.IsNegative():
			payable = payable.Add(p.Balance.Abs())
		}
	}
	return receivable, payable
}
