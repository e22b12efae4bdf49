package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pasale_ledger/internal/core/ports/services"
	"github.com/SscSPs/pasale_ledger/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	store portssvc.StoreSvcFacade
	now   func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock sets the clock used for "today" and the current month.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(store portssvc.StoreSvcFacade, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		store: store,
		now:   time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// BuildBusinessReport computes every report figure from one snapshot.
func BuildBusinessReport(s domain.Snapshot, generatedAt time.Time) domain.BusinessReport {
	sales := accounting.SumByType(s.Transactions, domain.TxSelling)
	purchases := accounting.SumByType(s.Transactions, domain.TxPurchase)
	expenses := accounting.SumExpenses(s.Expenses)
	receivable, payable := accounting.SplitBalances(s.Parties)

	return domain.BusinessReport{
		TotalSales:      sales,
		TotalPurchases:  purchases,
		TotalExpenses:   expenses,
		Profit:          sales.Sub(purchases).Sub(expenses),
		TotalReceivable: receivable,
		TotalPayable:    payable,
		NetBalance:      receivable.Sub(payable),
		CashInHand:      sales.Sub(purchases).Sub(expenses),
		GeneratedAt:     generatedAt,
	}
}

// BusinessReport generates the whole-business report
func (s *reportingService) BusinessReport(ctx context.Context) (*domain.BusinessReport, error) {
	report := BuildBusinessReport(s.store.Snapshot(ctx), s.now())

	s.LogInfo(ctx, "Business report generated successfully",
		slog.String("total_sales", report.TotalSales.String()),
		slog.String("profit", report.Profit.String()),
		slog.String("net_balance", report.NetBalance.String()))
	return &report, nil
}

// MonthlySummary returns the current year's income/expense series
func (s *reportingService) MonthlySummary(ctx context.Context) ([]domain.MonthlySummary, error) {
	return s.store.MonthlySummary(ctx, s.now()), nil
}

// Dashboard gathers the KPI cards from one consistent snapshot
func (s *reportingService) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	now := s.now()
	snapshot := s.store.Snapshot(ctx)
	report := BuildBusinessReport(snapshot, now)

	unread := 0
	for _, n := range snapshot.Notifications {
		if !n.Read {
			unread++
		}
	}

	summary := &domain.DashboardSummary{
		TotalSales:          report.TotalSales,
		TotalReceivable:     report.TotalReceivable,
		TotalPayable:        report.TotalPayable,
		CashInHand:          report.CashInHand,
		TodaySales:          dailySales(snapshot.Transactions, now),
		UnreadNotifications: unread,
		Monthly:             monthlySummaries(snapshot.Transactions, snapshot.Expenses, now),
	}

	s.LogDebug(ctx, "Dashboard summary generated", slog.Int("today_sales_count", summary.TodaySales.Count))
	return summary, nil
}
