package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/pasale_ledger/internal/apperrors"
	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/SscSPs/pasale_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionFilter(t *testing.T) {
	f, err := services.ParseTransactionFilter("", "", "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.LedgerAll, f.Type)
	assert.Nil(t, f.DateFrom)

	f, err = services.ParseTransactionFilter("2024-01-01", "2024-01-31", " Sales_Return ", "", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, domain.LedgerType(domain.TxSalesReturn), f.Type)
	require.NotNil(t, f.DateTo)
	assert.Equal(t, 31, f.DateTo.Day())

	tests := []struct {
		name, from, to, typ string
	}{
		{"bad from", "2024/01/01", "", ""},
		{"reversed range", "2024-02-01", "2024-01-01", ""},
		{"unknown type", "", "", "gift"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.ParseTransactionFilter(tt.from, tt.to, tt.typ, "", time.UTC)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
		})
	}
}

func TestParseExpenseFilter(t *testing.T) {
	f, err := services.ParseExpenseFilter("", "", "All", "", "  tea ", time.UTC)
	require.NoError(t, err)
	assert.Empty(t, f.Category)
	assert.Equal(t, domain.NecessityAll, f.Necessity)
	assert.Equal(t, "tea", f.Search)

	f, err = services.ParseExpenseFilter("", "", " Rent ", "Necessary", "", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "Rent", f.Category)
	assert.Equal(t, domain.NecessityNecessary, f.Necessity)

	_, err = services.ParseExpenseFilter("", "", "", "optional", "", time.UTC)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = services.ParseExpenseFilter("yesterday", "", "", "", "", time.UTC)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}
