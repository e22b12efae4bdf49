package cmd

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/pasale_ledger/internal/adapters/database/boltdb"
	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/SscSPs/pasale_ledger/internal/core/services"
	"github.com/SscSPs/pasale_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// seedStore writes one customer with a sale and a payment to a fresh bolt file
// and points the configuration at it.
func seedStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "pasale.db")

	repo, err := boltdb.Open(path)
	require.NoError(t, err)
	ctx := context.Background()
	store := services.NewStoreService(ctx, repo)
	_, err = store.AddParty(ctx, domain.Party{ID: "p1", Name: "Acme Traders", Type: domain.Customer})
	require.NoError(t, err)
	_, err = store.AddTransaction(ctx, domain.Transaction{ID: "t1", Type: domain.TxSelling, Amount: decimal.NewFromInt(1500), Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), PartyID: "p1", Description: "Rice"})
	require.NoError(t, err)
	_, err = store.AddTransaction(ctx, domain.Transaction{ID: "t2", Type: domain.TxPurchase, Amount: decimal.NewFromInt(300), Date: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), PartyID: "p1", Description: "Sugar"})
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	t.Setenv("STORAGE_DRIVER", "bolt")
	t.Setenv("BOLT_PATH", path)
	t.Setenv("TIMEZONE", "UTC")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	debug, output, lang = false, "json", "en"
	dateFrom, dateTo, ledgerType, search, format, outPath = "", "", "", "", "xlsx", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParties_JSON(t *testing.T) {
	seedStore(t)

	out, err := run(t, "parties")
	require.NoError(t, err)

	var parties []dto.PartyResponse
	require.NoError(t, json.Unmarshal([]byte(out), &parties))
	require.Len(t, parties, 1)
	assert.Equal(t, "Acme Traders", parties[0].Name)
}

func TestReport_YAML(t *testing.T) {
	seedStore(t)

	out, err := run(t, "report", "--output", "yaml")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, "1500", report["totalSales"])
	assert.Equal(t, "300", report["totalPurchases"])
	assert.Contains(t, out, "formatted:\n")
	assert.NotContains(t, out, "{")
}

func TestLedger_Filters(t *testing.T) {
	seedStore(t)

	out, err := run(t, "ledger", "p1", "--type", "selling")
	require.NoError(t, err)
	var ledger dto.LedgerResponse
	require.NoError(t, json.Unmarshal([]byte(out), &ledger))
	require.Len(t, ledger.Entries, 1)
	assert.Equal(t, "t1", ledger.Entries[0].TransactionID)

	_, err = run(t, "ledger", "missing")
	assert.Error(t, err)

	_, err = run(t, "ledger", "p1", "--dateFrom", "5 Jan")
	assert.Error(t, err)
}

func TestExportLedger_CSV(t *testing.T) {
	dir := seedStore(t)
	target := filepath.Join(dir, "acme.csv")

	out, err := run(t, "export-ledger", "p1", "--format", "csv", "--out", target)
	require.NoError(t, err)
	assert.Contains(t, out, target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	require.NoError(t, err)
	// header, opening, two entries, closing
	assert.Len(t, records, 5)
	assert.Equal(t, "Sugar", records[3][2])
}

func TestExportLedger_UnknownFormat(t *testing.T) {
	seedStore(t)

	_, err := run(t, "export-ledger", "p1", "--format", "pdf")
	assert.Error(t, err)
}

func TestPrintResult_UnknownOutput(t *testing.T) {
	output = "toml"
	defer func() { output = "json" }()
	assert.Error(t, printResult(&bytes.Buffer{}, map[string]int{"a": 1}))
}
