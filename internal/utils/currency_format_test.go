package utils

import (
	"testing"

	"github.com/SscSPs/pasale_ledger/internal/utils/nepalidate"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in    string
		style GroupingStyle
		want  string
	}{
		{"0", GroupingWestern, "0"},
		{"999", GroupingWestern, "999"},
		{"1500", GroupingWestern, "1,500"},
		{"1234567", GroupingWestern, "1,234,567"},
		{"1234567", GroupingIndian, "12,34,567"},
		{"123456789", GroupingIndian, "12,34,56,789"},
		{"1500.50", GroupingWestern, "1,500.5"},
		{"12.3456", GroupingWestern, "12.346"},
		{"-2500", GroupingWestern, "-2,500"},
		{"-0.0001", GroupingWestern, "0"},
		{"1234567.5", GroupingIndian, "12,34,567.5"},
		{"-150000", GroupingIndian, "-1,50,000"},
		{"999", GroupingIndian, "999"},
	}
	for _, tt := range tests {
		t.Run(tt.in+"/"+string(tt.style), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(decimal.RequireFromString(tt.in), tt.style))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	amount := decimal.NewFromInt(1500)
	assert.Equal(t, "Rs. 1,500", FormatCurrency(amount, nepalidate.English))
	assert.Equal(t, "रु. १,५००", FormatCurrency(amount, nepalidate.Nepali))
	assert.Equal(t, "Rs. 1,50,000", FormatCurrencyWith(decimal.NewFromInt(150000), nepalidate.English, GroupingIndian))
}

func TestParseGroupingStyle(t *testing.T) {
	assert.Equal(t, GroupingIndian, ParseGroupingStyle("Indian"))
	assert.Equal(t, GroupingWestern, ParseGroupingStyle("us"))
}
