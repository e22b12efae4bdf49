package services

import (
	"context"
	"time"

	portsrepo "github.com/SscSPs/pasale_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pasale_ledger/internal/core/ports/services"
	"github.com/SscSPs/pasale_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(ctx context.Context, cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	loc := time.UTC
	if cfg != nil && cfg.Location != nil {
		loc = cfg.Location
	}
	clock := func() time.Time { return time.Now().In(loc) }

	container := &portssvc.ServiceContainer{}

	// The store owns all state; the other services only read from it.
	container.Store = NewStoreService(ctx, repos.SnapshotRepo, WithClock(clock))
	container.Ledger = NewLedgerService(container.Store)
	container.Reporting = NewReportingService(container.Store, WithReportingClock(clock))

	return container
}
