package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deal-engine/domain"
)

func TestCalculate70PercentRule(t *testing.T) {
	assert.Equal(t, 180000.0, Calculate70PercentRule(300000, 30000))
	assert.Equal(t, 70000.0, Calculate70PercentRule(100000, 0))
	assert.Equal(t, -30000.0, Calculate70PercentRule(0, 30000))
}

func TestAnalyzeDeal_CashDeal(t *testing.T) {
	rq := require.New(t)

	result := AnalyzeDeal(domain.DealAnalysisInput{
		PurchasePrice:    200000,
		AfterRepairValue: 300000,
		RepairCosts:      30000,
		HoldingCosts:     5000,
		ClosingCosts:     8000,
	})

	// Selling costs default to 6% of ARV (18000); down payment defaults to
	// the purchase price.
	rq.Equal(243000.0, result.TotalInvestment)
	rq.Equal(39000.0, result.ProjectedProfit)
	rq.Equal(16.0, result.ReturnOnInvestment)
	rq.Equal(16.0, result.CashOnCashReturn)
	rq.Equal(180000.0, result.MaxAllowableOffer)
	rq.Equal(300000.0, result.Equity)
	rq.Nil(result.MonthlyPayment)
}

func TestAnalyzeDeal_ExplicitSellingCosts(t *testing.T) {
	result := AnalyzeDeal(domain.DealAnalysisInput{
		PurchasePrice:    200000,
		AfterRepairValue: 300000,
		RepairCosts:      30000,
		SellingCosts:     10000,
	})

	// 300000 - 200000 - 30000 - 10000
	assert.Equal(t, 60000.0, result.ProjectedProfit)
}

func TestAnalyzeDeal_Financed(t *testing.T) {
	rq := require.New(t)

	result := AnalyzeDeal(domain.DealAnalysisInput{
		PurchasePrice:    200000,
		AfterRepairValue: 300000,
		RepairCosts:      30000,
		DownPayment:      40000,
		LoanAmount:       160000,
		InterestRate:     6,
	})

	rq.Equal(140000.0, result.Equity)
	rq.NotNil(result.MonthlyPayment)

	// Term defaults to 30 years when unspecified.
	rq.Equal(MonthlyPayment(160000, 6, 30), *result.MonthlyPayment)

	rq.Equal(70000.0, result.TotalInvestment)
}

func TestAnalyzeDeal_ExplicitLoanTerm(t *testing.T) {
	result := AnalyzeDeal(domain.DealAnalysisInput{
		PurchasePrice:    150000,
		AfterRepairValue: 220000,
		LoanAmount:       120000,
		InterestRate:     5.5,
		LoanTermYears:    15,
	})

	require.NotNil(t, result.MonthlyPayment)
	assert.Equal(t, MonthlyPayment(120000, 5.5, 15), *result.MonthlyPayment)
}

func TestAnalyzeDeal_ZeroInvestment(t *testing.T) {
	result := AnalyzeDeal(domain.DealAnalysisInput{})

	// No division by zero: ROI degrades to 0.
	assert.Equal(t, 0.0, result.ReturnOnInvestment)
	assert.Equal(t, 0.0, result.CashOnCashReturn)
}

func TestAnalyzeDeal_UnderwaterDeal(t *testing.T) {
	result := AnalyzeDeal(domain.DealAnalysisInput{
		PurchasePrice:    300000,
		AfterRepairValue: 250000,
		RepairCosts:      40000,
	})

	// ARV below purchase price is not an error; the loss shows up in the
	// numbers.
	assert.Less(t, result.ProjectedProfit, 0.0)
	assert.Less(t, result.ReturnOnInvestment, 0.0)
}

func TestAnalyzeDeal_Idempotent(t *testing.T) {
	input := domain.DealAnalysisInput{
		PurchasePrice:    180000,
		AfterRepairValue: 260000,
		RepairCosts:      25000,
		LoanAmount:       140000,
		InterestRate:     7,
	}

	first := AnalyzeDeal(input)
	second := AnalyzeDeal(input)

	assert.Equal(t, first.TotalInvestment, second.TotalInvestment)
	assert.Equal(t, first.ProjectedProfit, second.ProjectedProfit)
	assert.Equal(t, *first.MonthlyPayment, *second.MonthlyPayment)
}
