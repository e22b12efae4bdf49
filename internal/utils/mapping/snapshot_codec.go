package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/pasale_ledger/internal/apperrors"
	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	"github.com/SscSPs/pasale_ledger/internal/models"
)

// EncodeSnapshot serialises a snapshot to the stored JSON document.
func EncodeSnapshot(s domain.Snapshot) ([]byte, error) {
	data, err := json.Marshal(ToModelSnapshot(s))
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a stored JSON document. Any parse failure is reported
// as apperrors.ErrCorruptSnapshot.
func DecodeSnapshot(data []byte) (domain.Snapshot, error) {
	var m models.Snapshot
	if err := json.Unmarshal(data, &m); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", apperrors.ErrCorruptSnapshot, err)
	}
	return ToDomainSnapshot(m), nil
}
