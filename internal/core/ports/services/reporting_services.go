package services

import (
	"context"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
)

// ReportingService defines operations for generating business reports
type ReportingService interface {
	// BusinessReport computes the whole-business totals from current state.
	BusinessReport(ctx context.Context) (*domain.BusinessReport, error)

	// MonthlySummary returns the income/expense series for the current year.
	MonthlySummary(ctx context.Context) ([]domain.MonthlySummary, error)

	// Dashboard returns the KPI cards shown on the home screen.
	Dashboard(ctx context.Context) (*domain.DashboardSummary, error)
}
