package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/pasale_ledger/internal/apperrors"
	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/SscSPs/pasale_ledger/internal/utils/nepalidate"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleLedger() domain.Ledger {
	d := func(v string) decimal.Decimal { return decimal.RequireFromString(v) }
	tx := domain.Transaction{ID: "t1", Type: domain.TxSelling, Amount: d("50"), Description: "Rice", Date: time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)}
	return domain.Ledger{
		Party:          domain.Party{ID: "p1", Name: "Acme", Type: domain.Customer},
		OpeningBalance: d("100"),
		Entries:        []domain.LedgerEntry{{Transaction: tx, Debit: d("50"), Credit: decimal.Zero, Balance: d("150")}},
		ClosingBalance: d("150"),
		TotalDebit:     d("50"),
		TotalCredit:    decimal.Zero,
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	f, err = ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("pdf")
	assert.True(t, errors.Is(err, apperrors.ErrUnsupportedFormat))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "ledger_acme_traders.csv", FormatCSV.Filename("ledger_Acme Traders"))
	assert.Equal(t, "export.xlsx", FormatXLSX.Filename("रमेश"))
}

func TestWriteLedger_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLedger(&buf, sampleLedger(), FormatCSV, nepalidate.English, time.UTC))

	data := buf.Bytes()
	require.True(t, bytes.HasPrefix(data, utf8BOM))

	records, err := csv.NewReader(bytes.NewReader(data[len(utf8BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"Date", "Type", "Description", "Debit", "Credit", "Balance"}, records[0])
	assert.Equal(t, "100.00", records[1][5])
	assert.Equal(t, []string{"2081-12-30", "selling", "Rice", "50.00", "0.00", "150.00"}, records[2])
	assert.Equal(t, "150.00", records[3][5])
}

func TestWriteLedger_NepaliHeadersAndDigits(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLedger(&buf, sampleLedger(), FormatCSV, nepalidate.Nepali, time.UTC))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(utf8BOM):])).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "मिति", records[0][0])
	assert.Equal(t, "२०८१-१२-३०", records[2][0])
}

func TestWriteLedger_XLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLedger(&buf, sampleLedger(), FormatXLSX, nepalidate.English, time.UTC))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Ledger"}, f.GetSheetList())

	header, err := f.GetCellValue("Ledger", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	desc, err := f.GetCellValue("Ledger", "C3")
	require.NoError(t, err)
	assert.Equal(t, "Rice", desc)

	raw, err := f.GetCellValue("Ledger", "F3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	balance, err := decimal.NewFromString(raw)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(150).Equal(balance))
}

func TestWriteReport(t *testing.T) {
	report := domain.BusinessReport{
		TotalSales:  decimal.NewFromInt(1000),
		Profit:      decimal.NewFromInt(500),
		CashInHand:  decimal.NewFromInt(500),
		GeneratedAt: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
	monthly := []domain.MonthlySummary{
		{Month: "Baisakh", Income: decimal.NewFromInt(300), Expense: decimal.NewFromInt(40)},
	}

	var xlsx bytes.Buffer
	require.NoError(t, WriteReport(&xlsx, report, monthly, FormatXLSX, nepalidate.English, time.UTC))
	f, err := excelize.OpenReader(&xlsx)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Summary", "Monthly"}, f.GetSheetList())
	month, err := f.GetCellValue("Monthly", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Baisakh", month)

	var out bytes.Buffer
	require.NoError(t, WriteReport(&out, report, monthly, FormatCSV, nepalidate.English, time.UTC))
	reader := csv.NewReader(bytes.NewReader(out.Bytes()[len(utf8BOM):]))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Total sales", "1000.00"}, records[1])
	assert.Equal(t, []string{"Month", "Income", "Expense"}, records[len(records)-2])
}

func TestWriteUnknownFormat(t *testing.T) {
	err := WriteLedger(&bytes.Buffer{}, sampleLedger(), Format("pdf"), nepalidate.English, time.UTC)
	assert.True(t, errors.Is(err, apperrors.ErrUnsupportedFormat))
}

func TestWriteLedger_DatesInShopZone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	l := sampleLedger()
	l.Entries[0].Transaction.Date = time.Date(2024, time.December, 30, 3, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, WriteLedger(&buf, l, FormatCSV, nepalidate.English, ny))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(utf8BOM):])).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "2081-12-29", records[2][0])
}
