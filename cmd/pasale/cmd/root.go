// Package cmd provides CLI commands for pasale.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/pasale_ledger/internal/adapters/database"
	portsrepo "github.com/SscSPs/pasale_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pasale_ledger/internal/core/ports/services"
	"github.com/SscSPs/pasale_ledger/internal/core/services"
	"github.com/SscSPs/pasale_ledger/internal/platform/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	debug  bool
	output string
	lang   string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pasale",
	Short: "Inspect and export the shop ledger",
	Long: `pasale reads the same snapshot the API server uses and prints
reports, party ledgers and party lists.

Storage is selected with the server's environment (STORAGE_DRIVER,
BOLT_PATH, PGSQL_URL, SNAPSHOT_SLOT, TIMEZONE); a .env file is honoured.

Example:
  pasale report
  pasale ledger p1 --dateFrom 2024-01-01 --type selling
  pasale export-ledger p1 --format csv --out acme.csv
  pasale parties --output yaml`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelWarn
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "json", "output format: json or yaml")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "en", "display language for formatted values: en or np")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(monthlyCmd)
	rootCmd.AddCommand(partiesCmd)
	rootCmd.AddCommand(ledgerCmd)
	rootCmd.AddCommand(exportLedgerCmd)
}

// session is an opened snapshot plus the services reading it.
type session struct {
	cfg      *config.Config
	services *portssvc.ServiceContainer
	repo     portsrepo.SnapshotRepository
}

func (s *session) Close() {
	if err := s.repo.Close(); err != nil {
		slog.Warn("Error closing storage", slog.String("error", err.Error()))
	}
}

// openSession loads config and the configured snapshot.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	repo, err := database.OpenSnapshotRepository(ctx, cfg, slog.Default())
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	container := services.NewServiceContainer(ctx, cfg, portsrepo.RepositoryProvider{SnapshotRepo: repo})
	return &session{cfg: cfg, services: container, repo: repo}, nil
}

// printResult writes v to w as indented JSON or as YAML.
func printResult(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	switch output {
	case "json", "":
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml", "yml":
		// JSON is valid YAML; decoding into a node keeps the json field names and order.
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return fmt.Errorf("failed to convert result: %w", err)
		}
		blockStyle(&node)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", output)
	}
}

// blockStyle clears the flow and quoting styles inherited from JSON.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
