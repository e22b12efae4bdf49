package repositories

import (
	"context"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
)

// SnapshotReader loads the persisted store state.
type SnapshotReader interface {
	// Load returns the stored snapshot. A missing slot yields an empty snapshot
	// and no error; an undecodable slot yields apperrors.ErrCorruptSnapshot.
	Load(ctx context.Context) (domain.Snapshot, error)
}

// SnapshotWriter replaces the persisted store state.
type SnapshotWriter interface {
	// Save overwrites the whole slot with s.
	Save(ctx context.Context, s domain.Snapshot) error
}

// SnapshotRepository is the single-slot persistence port behind the store.
type SnapshotRepository interface {
	SnapshotReader
	SnapshotWriter
	Close() error
}
