// Package boltdb stores the ledger snapshot in a single bbolt key.
package boltdb

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pasale_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pasale_ledger/internal/models"
	"github.com/SscSPs/pasale_ledger/internal/utils/mapping"
	bolt "go.etcd.io/bbolt"
)

// BucketName is the bucket holding snapshot slots.
const BucketName = "pasale"

// openTimeout bounds the wait for the file lock held by another process.
const openTimeout = 2 * time.Second

// SnapshotRepository keeps the snapshot as one JSON value under a slot key.
type SnapshotRepository struct {
	db   *bolt.DB
	slot []byte
}

// Option configures a SnapshotRepository.
type Option func(*SnapshotRepository)

// WithSlot overrides the key the snapshot is stored under.
func WithSlot(slot string) Option {
	return func(r *SnapshotRepository) {
		if slot != "" {
			r.slot = []byte(slot)
		}
	}
}

// Open opens (or creates) the database file and its bucket.
func Open(path string, opts ...Option) (*SnapshotRepository, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(BucketName)); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", BucketName, err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	r := &SnapshotRepository{db: db, slot: []byte(models.SnapshotKey)}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

var _ portsrepo.SnapshotRepository = (*SnapshotRepository)(nil)

// Load reads the slot. A missing key is an empty snapshot.
func (r *SnapshotRepository) Load(ctx context.Context) (domain.Snapshot, error) {
	var data []byte
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))
		if b == nil {
			return fmt.Errorf("bucket %s not found", BucketName)
		}
		if v := b.Get(r.slot); v != nil {
			// v is only valid for the life of the transaction.
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if data == nil {
		return domain.Snapshot{}, nil
	}
	return mapping.DecodeSnapshot(data)
}

// Save overwrites the slot with s.
func (r *SnapshotRepository) Save(ctx context.Context, s domain.Snapshot) error {
	data, err := mapping.EncodeSnapshot(s)
	if err != nil {
		return err
	}
	return r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))
		if b == nil {
			return fmt.Errorf("bucket %s not found", BucketName)
		}
		if err := b.Put(r.slot, data); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		return nil
	})
}

// Close closes the database.
func (r *SnapshotRepository) Close() error {
	return r.db.Close()
}
