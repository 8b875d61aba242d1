package service

import (
	"math"

	"deal-engine/domain"
)

// AnalyzeDeal computes the profitability of a flip deal. It never fails:
// nonsensical inputs (ARV below purchase price, negative costs) simply flow
// through into a negative profit. Input validation belongs to the caller.
func AnalyzeDeal(input domain.DealAnalysisInput) domain.DealAnalysisResult {
	downPayment := input.DownPayment
	if downPayment == 0 {
		// An all-cash purchase unless the caller says otherwise.
		downPayment = input.PurchasePrice
	}

	sellingCosts := input.SellingCosts
	if sellingCosts == 0 {
		sellingCosts = input.AfterRepairValue * DefaultSellingCostRate
	}

	totalInvestment := downPayment + input.RepairCosts + input.HoldingCosts + input.ClosingCosts

	projectedProfit := input.AfterRepairValue - input.PurchasePrice - input.RepairCosts -
		input.HoldingCosts - input.ClosingCosts - sellingCosts

	returnOnInvestment := 0.0
	if totalInvestment > 0 {
		returnOnInvestment = projectedProfit / totalInvestment * 100
	}

	// Cash invested currently matches total investment; kept as its own
	// figure so financed deals can diverge it from unlevered ROI later.
	cashOnCashReturn := returnOnInvestment

	result := domain.DealAnalysisResult{
		TotalInvestment:    roundToWhole(totalInvestment),
		ProjectedProfit:    roundToWhole(projectedProfit),
		ReturnOnInvestment: roundTo1Decimal(returnOnInvestment),
		CashOnCashReturn:   roundTo1Decimal(cashOnCashReturn),
		MaxAllowableOffer:  roundToWhole(Calculate70PercentRule(input.AfterRepairValue, input.RepairCosts)),
		Equity:             roundToWhole(input.AfterRepairValue - math.Max(input.LoanAmount, 0)),
	}

	if input.LoanAmount > 0 {
		termYears := input.LoanTermYears
		if termYears == 0 {
			termYears = DefaultLoanTermYears
		}
		payment := MonthlyPayment(input.LoanAmount, input.InterestRate, termYears)
		result.MonthlyPayment = &payment
	}

	return result
}

// Calculate70PercentRule returns the maximum allowable offer for a property:
// 70% of the after-repair value minus repair costs.
func Calculate70PercentRule(afterRepairValue, repairCosts float64) float64 {
	return afterRepairValue*SeventyPercentRule - repairCosts
}
