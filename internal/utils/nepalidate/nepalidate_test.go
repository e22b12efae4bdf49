package nepalidate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	// 2024-12-30 is a Monday.
	day := time.Date(2024, time.December, 30, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "30 Chaitra, 2081 BS (Monday)", Format(day, English))
	assert.Equal(t, "३० चैत्र, २०८१ (सोमबार)", Format(day, Nepali))
}

func TestShortDate(t *testing.T) {
	day := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2081-01-05", ShortDate(day, English))
	assert.Equal(t, "२०८१-०१-०५", ShortDate(day, Nepali))
}

func TestNumeralsRoundTrip(t *testing.T) {
	assert.Equal(t, "१,२३४.५६", ToNepaliNumerals("1,234.56"))
	assert.Equal(t, "1,234.56", ToEnglishNumerals("१,२३४.५६"))
	assert.Equal(t, "Rs. abc", ToEnglishNumerals("Rs. abc"))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Baisakh", MonthName(time.January, English))
	assert.Equal(t, "पुष", MonthName(time.September, Nepali))
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, Nepali, ParseLanguage("NP"))
	assert.Equal(t, Nepali, ParseLanguage("ne"))
	assert.Equal(t, English, ParseLanguage(""))
	assert.Equal(t, English, ParseLanguage("fr"))
}
