package service

import "deal-engine/domain"

// CalculateRentalCashFlow walks a rental's income waterfall from gross rent
// down to annual cash flow. Outputs are whole currency units.
func CalculateRentalCashFlow(input domain.RentalCashFlowInput) domain.RentalCashFlowResult {
	vacancyRate := input.VacancyRate
	if vacancyRate == 0 {
		vacancyRate = DefaultVacancyRate
	}

	vacancyLoss := input.MonthlyRent * vacancyRate
	effectiveGrossIncome := input.MonthlyRent - vacancyLoss

	propertyManagement := input.MonthlyRent * input.PropertyManagementRate
	totalExpenses := input.MonthlyExpenses + propertyManagement

	netOperatingIncome := effectiveGrossIncome - totalExpenses
	monthlyCashFlow := netOperatingIncome - input.MonthlyMortgage

	return domain.RentalCashFlowResult{
		GrossMonthlyIncome:   roundToWhole(input.MonthlyRent),
		EffectiveGrossIncome: roundToWhole(effectiveGrossIncome),
		NetOperatingIncome:   roundToWhole(netOperatingIncome),
		MonthlyCashFlow:      roundToWhole(monthlyCashFlow),
		AnnualCashFlow:       roundToWhole(monthlyCashFlow * MonthsPerYear),
	}
}

// CalculateCapRate returns annual NOI over property value as a percentage,
// or 0 when the property value is not positive.
func CalculateCapRate(netOperatingIncome, propertyValue float64) float64 {
	if propertyValue <= 0 {
		return 0
	}
	return roundTo2Decimals(netOperatingIncome / propertyValue * 100)
}

// CalculateDSCR returns NOI over annual debt service, or 0 when the debt
// service is not positive. A ratio above 1 means income covers the debt.
func CalculateDSCR(netOperatingIncome, annualDebtService float64) float64 {
	if annualDebtService <= 0 {
		return 0
	}
	return roundTo2Decimals(netOperatingIncome / annualDebtService)
}
