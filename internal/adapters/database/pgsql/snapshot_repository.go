package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pasale_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pasale_ledger/internal/models"
	"github.com/SscSPs/pasale_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSnapshotRepository stores the snapshot as one JSONB row per slot.
type PgxSnapshotRepository struct {
	pool *pgxpool.Pool
	slot string
}

// NewSnapshotRepository creates a repository over the given pool. An empty
// slot falls back to the default snapshot key.
func NewSnapshotRepository(pool *pgxpool.Pool, slot string) *PgxSnapshotRepository {
	if slot == "" {
		slot = models.SnapshotKey
	}
	return &PgxSnapshotRepository{pool: pool, slot: slot}
}

var _ portsrepo.SnapshotRepository = (*PgxSnapshotRepository)(nil)

// Load reads the slot row. No row is an empty snapshot.
func (r *PgxSnapshotRepository) Load(ctx context.Context) (domain.Snapshot, error) {
	query := `SELECT payload FROM ledger_snapshots WHERE slot = $1;`

	var payload []byte
	err := r.pool.QueryRow(ctx, query, r.slot).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Snapshot{}, nil
		}
		return domain.Snapshot{}, fmt.Errorf("failed to load snapshot %s: %w", r.slot, err)
	}
	return mapping.DecodeSnapshot(payload)
}

// Save upserts the slot row.
func (r *PgxSnapshotRepository) Save(ctx context.Context, s domain.Snapshot) error {
	payload, err := mapping.EncodeSnapshot(s)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO ledger_snapshots (slot, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (slot) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.pool.Exec(ctx, query, r.slot, payload); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", r.slot, err)
	}
	return nil
}

// Close releases the pool.
func (r *PgxSnapshotRepository) Close() error {
	r.pool.Close()
	return nil
}
