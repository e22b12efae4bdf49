package cmd

import (
	"github.com/SscSPs/pasale_ledger/internal/dto"
	"github.com/spf13/cobra"
)

// reportCmd represents the report command.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the business report",
	Long: `Print sales, purchases, expenses, profit, receivable, payable,
net balance and cash in hand computed from the current snapshot.

Example:
  pasale report --lang np`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

// monthlyCmd represents the monthly command.
var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Print income and expense per month of the current year",
	Args:  cobra.NoArgs,
	RunE:  runMonthly,
}

func runReport(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	report, err := s.services.Reporting.BusinessReport(cmd.Context())
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), dto.ToBusinessReportResponse(report, dto.NewPresenter(lang, s.cfg.GroupingStyle, s.cfg.Location)))
}

func runMonthly(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	monthly, err := s.services.Reporting.MonthlySummary(cmd.Context())
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), dto.ToMonthlySummaryResponse(monthly))
}
