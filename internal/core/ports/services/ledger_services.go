package services

import (
	"context"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
)

// LedgerService projects per-party ledgers
type LedgerService interface {
	// PartyLedger returns the running-balance ledger of the party under filter.
	// An unknown party yields apperrors.ErrNotFound.
	PartyLedger(ctx context.Context, partyID string, filter domain.LedgerFilter) (*domain.Ledger, error)
}
