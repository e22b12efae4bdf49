// Package database selects the snapshot backend named by the configuration.
package database

import (
	"context"
	"log/slog"

	"github.com/SscSPs/pasale_ledger/internal/adapters/database/boltdb"
	"github.com/SscSPs/pasale_ledger/internal/adapters/database/pgsql"
	portsrepo "github.com/SscSPs/pasale_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pasale_ledger/internal/platform/config"
	pgpool "github.com/SscSPs/pasale_ledger/pkg/database"
)

// OpenSnapshotRepository opens the bolt file or, for postgres, migrates the
// schema and connects a pool. The caller closes the returned repository.
func OpenSnapshotRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.SnapshotRepository, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		if err := pgsql.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return nil, err
		}
		dbPool, err := pgpool.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewSnapshotRepository(dbPool, cfg.SnapshotSlot), nil
	default:
		repo, err := boltdb.Open(cfg.BoltPath, boltdb.WithSlot(cfg.SnapshotSlot))
		if err != nil {
			return nil, err
		}
		logger.Debug("Bolt store opened", slog.String("path", cfg.BoltPath))
		return repo, nil
	}
}
