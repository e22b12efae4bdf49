package cmd

import (
	"github.com/SscSPs/pasale_ledger/internal/dto"
	"github.com/spf13/cobra"
)

// partiesCmd represents the parties command.
var partiesCmd = &cobra.Command{
	Use:   "parties",
	Short: "List customers and suppliers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		parties := s.services.Store.ListParties(cmd.Context())
		return printResult(cmd.OutOrStdout(), dto.ToListPartyResponse(parties, dto.NewPresenter(lang, s.cfg.GroupingStyle, s.cfg.Location)))
	},
}
