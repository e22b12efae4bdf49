package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/SscSPs/pasale_ledger/internal/core/services"
	"github.com/SscSPs/pasale_ledger/internal/dto"
	"github.com/SscSPs/pasale_ledger/internal/export"
	"github.com/SscSPs/pasale_ledger/internal/utils/nepalidate"
	"github.com/spf13/cobra"
)

var (
	dateFrom   string
	dateTo     string
	ledgerType string
	search     string
	format     string
	outPath    string
)

// ledgerCmd represents the ledger command.
var ledgerCmd = &cobra.Command{
	Use:   "ledger <partyID>",
	Short: "Print a party's running-balance ledger",
	Long: `Print the chronological ledger of one party. Every given filter must match.

Example:
  pasale ledger p1 --dateFrom 2024-01-01 --dateTo 2024-01-31 --type selling --search rice`,
	Args: cobra.ExactArgs(1),
	RunE: runLedger,
}

// exportLedgerCmd represents the export-ledger command.
var exportLedgerCmd = &cobra.Command{
	Use:   "export-ledger <partyID>",
	Short: "Write a party's ledger as XLSX or CSV",
	Long: `Write the ledger of one party to a spreadsheet. Takes the same filters as ledger.

Example:
  pasale export-ledger p1 --format csv --out acme.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runExportLedger,
}

func init() {
	for _, c := range []*cobra.Command{ledgerCmd, exportLedgerCmd} {
		c.Flags().StringVar(&dateFrom, "dateFrom", "", "first day (YYYY-MM-DD)")
		c.Flags().StringVar(&dateTo, "dateTo", "", "last day, inclusive (YYYY-MM-DD)")
		c.Flags().StringVar(&ledgerType, "type", "", "all, selling, purchase or expense")
		c.Flags().StringVar(&search, "search", "", "case-insensitive description search")
	}
	exportLedgerCmd.Flags().StringVar(&format, "format", "xlsx", "xlsx or csv")
	exportLedgerCmd.Flags().StringVar(&outPath, "out", "", "output file (default ledger_<party>.<format>)")
}

func buildLedger(cmd *cobra.Command, s *session, partyID string) (*domain.Ledger, error) {
	filter, err := services.ParseLedgerFilter(dateFrom, dateTo, ledgerType, search, s.cfg.Location)
	if err != nil {
		return nil, err
	}
	return s.services.Ledger.PartyLedger(cmd.Context(), partyID, filter)
}

func runLedger(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	ledger, err := buildLedger(cmd, s, args[0])
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), dto.ToLedgerResponse(ledger, dto.NewPresenter(lang, s.cfg.GroupingStyle, s.cfg.Location)))
}

func runExportLedger(cmd *cobra.Command, args []string) error {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	ledger, err := buildLedger(cmd, s, args[0])
	if err != nil {
		return err
	}

	path := outPath
	if path == "" {
		path = f.Filename("ledger_" + ledger.Party.Name)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := export.WriteLedger(file, *ledger, f, nepalidate.ParseLanguage(lang), s.cfg.Location); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	slog.Info("Ledger exported", slog.String("path", path), slog.Int("entries", len(ledger.Entries)))
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
