package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deal-engine/domain"
)

func TestCalculateRentalCashFlow_Defaults(t *testing.T) {
	rq := require.New(t)

	result := CalculateRentalCashFlow(domain.RentalCashFlowInput{
		MonthlyRent:     2000,
		MonthlyExpenses: 500,
		MonthlyMortgage: 1200,
	})

	// 8% default vacancy: 2000 - 160 = 1840.
	rq.Equal(2000.0, result.GrossMonthlyIncome)
	rq.Equal(1840.0, result.EffectiveGrossIncome)
	rq.Equal(1340.0, result.NetOperatingIncome)
	rq.Equal(140.0, result.MonthlyCashFlow)
	rq.Equal(1680.0, result.AnnualCashFlow)
}

func TestCalculateRentalCashFlow_CustomVacancy(t *testing.T) {
	result := CalculateRentalCashFlow(domain.RentalCashFlowInput{
		MonthlyRent:     2000,
		MonthlyExpenses: 500,
		MonthlyMortgage: 1200,
		VacancyRate:     0.05,
	})

	assert.Equal(t, 1900.0, result.EffectiveGrossIncome)
	assert.Equal(t, 1400.0, result.NetOperatingIncome)
}

func TestCalculateRentalCashFlow_ManagementFee(t *testing.T) {
	result := CalculateRentalCashFlow(domain.RentalCashFlowInput{
		MonthlyRent:            2000,
		MonthlyExpenses:        500,
		MonthlyMortgage:        1200,
		PropertyManagementRate: 0.10,
	})

	// Management fee (200) joins the expense side: 1840 - 700 = 1140.
	assert.Equal(t, 1140.0, result.NetOperatingIncome)
	assert.Equal(t, -60.0, result.MonthlyCashFlow)
	assert.Equal(t, -720.0, result.AnnualCashFlow)
}

func TestCalculateCapRate(t *testing.T) {
	assert.Equal(t, 6.0, CalculateCapRate(12000, 200000))
	assert.Equal(t, 5.33, CalculateCapRate(8000, 150000))
	assert.Equal(t, 0.0, CalculateCapRate(12000, 0))
	assert.Equal(t, 0.0, CalculateCapRate(12000, -50000))
}

func TestCalculateDSCR(t *testing.T) {
	assert.Equal(t, 1.2, CalculateDSCR(12000, 10000))
	assert.Equal(t, 0.67, CalculateDSCR(8000, 12000))
	assert.Equal(t, 0.0, CalculateDSCR(12000, 0))
	assert.Equal(t, 0.0, CalculateDSCR(12000, -1))
}

func TestRentalCalculations_Idempotent(t *testing.T) {
	input := domain.RentalCashFlowInput{
		MonthlyRent:     2450,
		MonthlyExpenses: 610,
		MonthlyMortgage: 1390,
	}

	assert.Equal(t, CalculateRentalCashFlow(input), CalculateRentalCashFlow(input))
	assert.Equal(t, CalculateCapRate(13000, 215000), CalculateCapRate(13000, 215000))
}
