package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pasale_ledger/internal/core/ports/services"
	"github.com/SscSPs/pasale_ledger/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	store     portssvc.StoreSvcFacade
	reporting portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	clock := func() time.Time { return fixedNow }
	suite.store = services.NewStoreService(suite.ctx, &memoryRepository{}, services.WithClock(clock))
	suite.reporting = services.NewReportingService(suite.store, services.WithReportingClock(clock))

	for _, tx := range []domain.Transaction{
		{Type: domain.TxSelling, Amount: dec("1000"), Date: fixedNow},
		{Type: domain.TxPurchase, Amount: dec("400"), Date: fixedNow.AddDate(0, -1, 0)},
		{Type: domain.TxPaymentIn, Amount: dec("300"), Date: fixedNow},
	} {
		_, err := suite.store.AddTransaction(suite.ctx, tx)
		suite.Require().NoError(err)
	}
	_, err := suite.store.AddExpense(suite.ctx, domain.Expense{Category: "Rent", Amount: dec("100"), Date: fixedNow})
	suite.Require().NoError(err)
	_, err = suite.store.AddParty(suite.ctx, domain.Party{Name: "Sita", Type: domain.Customer, Balance: dec("600")})
	suite.Require().NoError(err)
	_, err = suite.store.AddParty(suite.ctx, domain.Party{Name: "Ram", Type: domain.Supplier, Balance: dec("-250")})
	suite.Require().NoError(err)
}

func (suite *ReportingServiceTestSuite) TestBusinessReport() {
	report, err := suite.reporting.BusinessReport(suite.ctx)
	suite.Require().NoError(err)

	suite.True(dec("1000").Equal(report.TotalSales))
	suite.True(dec("400").Equal(report.TotalPurchases))
	suite.True(dec("100").Equal(report.TotalExpenses))
	suite.True(dec("500").Equal(report.Profit))
	suite.True(dec("500").Equal(report.CashInHand))
	suite.True(dec("600").Equal(report.TotalReceivable))
	suite.True(dec("250").Equal(report.TotalPayable))
	suite.True(dec("350").Equal(report.NetBalance))
	suite.Equal(fixedNow, report.GeneratedAt)
}

func (suite *ReportingServiceTestSuite) TestReportMatchesStoreAggregates() {
	report, err := suite.reporting.BusinessReport(suite.ctx)
	suite.Require().NoError(err)

	suite.True(suite.store.TotalSales(suite.ctx).Equal(report.TotalSales))
	suite.True(suite.store.CashInHand(suite.ctx).Equal(report.CashInHand))
	suite.True(suite.store.TotalReceivable(suite.ctx).Equal(report.TotalReceivable))
	suite.True(suite.store.TotalPayable(suite.ctx).Equal(report.TotalPayable))
}

func (suite *ReportingServiceTestSuite) TestMonthlySummary() {
	monthly, err := suite.reporting.MonthlySummary(suite.ctx)
	suite.Require().NoError(err)

	suite.Require().Len(monthly, 3)
	suite.True(monthly[1].Income.IsZero())
	suite.True(dec("1000").Equal(monthly[2].Income))
	suite.True(dec("100").Equal(monthly[2].Expense))
}

func (suite *ReportingServiceTestSuite) TestDashboard() {
	dashboard, err := suite.reporting.Dashboard(suite.ctx)
	suite.Require().NoError(err)

	suite.True(dec("1000").Equal(dashboard.TotalSales))
	suite.True(dec("500").Equal(dashboard.CashInHand))
	suite.Equal(1, dashboard.TodaySales.Count)
	suite.True(dec("1000").Equal(dashboard.TodaySales.Total))
	// one "New Transaction" notification per transaction
	suite.Equal(3, dashboard.UnreadNotifications)
	suite.Len(dashboard.Monthly, 3)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
