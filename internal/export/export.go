// Package export renders ledgers and business reports as CSV or XLSX files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/SscSPs/pasale_ledger/internal/apperrors"
	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/SscSPs/pasale_ledger/internal/utils/nepalidate"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// utf8BOM lets spreadsheet apps detect UTF-8 (Devanagari headers and names).
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseFormat maps a query value to a Format. Empty means XLSX.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatXLSX:
		return FormatXLSX, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q (want csv or xlsx)", apperrors.ErrUnsupportedFormat, s)
	}
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Filename builds a download name such as "ledger_acme.xlsx".
func (f Format) Filename(base string) string {
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		}
		return -1
	}, base)
	if base == "" {
		base = "export"
	}
	return strings.ToLower(base) + "." + string(f)
}

// table is a header row plus body rows. Amount cells hold decimals so XLSX can
// store them as numbers.
type table struct {
	sheet  string
	header []string
	rows   [][]any
}

var ledgerHeaders = map[nepalidate.Language][]string{
	nepalidate.English: {"Date", "Type", "Description", "Debit", "Credit", "Balance"},
	nepalidate.Nepali:  {"मिति", "प्रकार", "विवरण", "डेबिट", "क्रेडिट", "मौज्दात"},
}

func ledgerTable(l domain.Ledger, lang nepalidate.Language, loc *time.Location) table {
	t := table{sheet: "Ledger", header: ledgerHeaders[lang]}
	if t.header == nil {
		t.header = ledgerHeaders[nepalidate.English]
	}

	t.rows = append(t.rows, []any{"", "", "Opening balance", "", "", l.OpeningBalance})
	for _, e := range l.Entries {
		t.rows = append(t.rows, []any{
			nepalidate.ShortDate(inLocation(e.Transaction.Date, loc), lang),
			string(e.Transaction.Type),
			e.Transaction.Description,
			e.Debit,
			e.Credit,
			e.Balance,
		})
	}
	t.rows = append(t.rows, []any{"", "", "Closing balance", l.TotalDebit, l.TotalCredit, l.ClosingBalance})
	return t
}

func reportTables(r domain.BusinessReport, monthly []domain.MonthlySummary, lang nepalidate.Language, loc *time.Location) []table {
	summary := table{
		sheet:  "Summary",
		header: []string{"Metric", "Amount"},
		rows: [][]any{
			{"Total sales", r.TotalSales},
			{"Total purchases", r.TotalPurchases},
			{"Total expenses", r.TotalExpenses},
			{"Profit", r.Profit},
			{"Total receivable", r.TotalReceivable},
			{"Total payable", r.TotalPayable},
			{"Net balance", r.NetBalance},
			{"Cash in hand", r.CashInHand},
			{"Generated", nepalidate.Format(inLocation(r.GeneratedAt, loc), lang)},
		},
	}

	months := table{sheet: "Monthly", header: []string{"Month", "Income", "Expense"}}
	for _, m := range monthly {
		months.rows = append(months.rows, []any{m.Month, m.Income, m.Expense})
	}
	return []table{summary, months}
}

// inLocation moves t into the shop's zone so dates print as the shop's calendar day.
func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}

// WriteLedger writes a party ledger to w. Dates are shown in loc.
func WriteLedger(w io.Writer, l domain.Ledger, f Format, lang nepalidate.Language, loc *time.Location) error {
	return write(w, f, ledgerTable(l, lang, loc))
}

// WriteReport writes the business report and its monthly series to w. CSV
// output holds both tables separated by a blank line.
func WriteReport(w io.Writer, r domain.BusinessReport, monthly []domain.MonthlySummary, f Format, lang nepalidate.Language, loc *time.Location) error {
	return write(w, f, reportTables(r, monthly, lang, loc)...)
}

func write(w io.Writer, f Format, tables ...table) error {
	switch f {
	case FormatCSV:
		return writeCSV(w, tables)
	case FormatXLSX:
		return writeXLSX(w, tables)
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedFormat, f)
	}
}

func writeCSV(w io.Writer, tables []table) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	writer := csv.NewWriter(w)
	for i, t := range tables {
		if i > 0 {
			if err := writer.Write([]string{}); err != nil {
				return fmt.Errorf("failed to write csv: %w", err)
			}
		}
		if err := writer.Write(t.header); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
		for _, row := range t.rows {
			record := make([]string, len(row))
			for j, cell := range row {
				record[j] = cellString(cell)
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write csv: %w", err)
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

func cellString(v any) string {
	switch c := v.(type) {
	case decimal.Decimal:
		return c.StringFixed(2)
	case string:
		return c
	default:
		return fmt.Sprint(c)
	}
}

func writeXLSX(w io.Writer, tables []table) error {
	f := excelize.NewFile()
	defer f.Close()

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	// 2 decimal places
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return fmt.Errorf("failed to create amount style: %w", err)
	}

	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", t.sheet); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", t.sheet, err)
			}
		} else if _, err := f.NewSheet(t.sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", t.sheet, err)
		}

		header := make([]any, len(t.header))
		for j, h := range t.header {
			header[j] = h
		}
		if err := f.SetSheetRow(t.sheet, "A1", &header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		lastCol, _ := excelize.ColumnNumberToName(len(t.header))
		if err := f.SetCellStyle(t.sheet, "A1", lastCol+"1", boldStyle); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}

		for r, row := range t.rows {
			for c, cell := range row {
				name, err := excelize.CoordinatesToCellName(c+1, r+2)
				if err != nil {
					return err
				}
				if d, ok := cell.(decimal.Decimal); ok {
					if err := f.SetCellFloat(t.sheet, name, d.InexactFloat64(), 2, 64); err != nil {
						return fmt.Errorf("failed to write cell %s: %w", name, err)
					}
					if err := f.SetCellStyle(t.sheet, name, name, amountStyle); err != nil {
						return fmt.Errorf("failed to style cell %s: %w", name, err)
					}
					continue
				}
				if err := f.SetCellValue(t.sheet, name, cell); err != nil {
					return fmt.Errorf("failed to write cell %s: %w", name, err)
				}
			}
		}

		if err := f.SetColWidth(t.sheet, "A", lastCol, 16); err != nil {
			return fmt.Errorf("failed to size columns: %w", err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}
