package service

import (
	"math"

	"github.com/samber/lo"

	"deal-engine/domain"
)

// rawMonthlyPayment is the unrounded annuity payment. The schedule generator
// iterates with this value so the balance lands on zero at the final period;
// callers see the cent-rounded figure from MonthlyPayment.
func rawMonthlyPayment(principal, annualRatePercent, termYears float64) float64 {
	if principal <= 0 || termYears <= 0 {
		return 0
	}

	numPayments := termYears * MonthsPerYear

	// Zero-rate loans amortize linearly; the annuity formula would divide
	// by zero.
	if annualRatePercent <= 0 {
		return principal / numPayments
	}

	monthlyRate := annualRatePercent / 100 / MonthsPerYear
	factor := math.Pow(1+monthlyRate, numPayments)

	return principal * monthlyRate * factor / (factor - 1)
}

// MonthlyPayment returns the fixed monthly payment for a loan, rounded to
// 2 decimals. Invalid terms (non-positive principal or term) yield 0.
func MonthlyPayment(principal, annualRatePercent, termYears float64) float64 {
	return roundTo2Decimals(rawMonthlyPayment(principal, annualRatePercent, termYears))
}

// GenerateSchedule produces the full month-by-month amortization of a loan.
// The result has exactly termYears*12 entries, or none for invalid terms.
// Running totals accumulate unrounded and every currency field is rounded
// only at emission.
func GenerateSchedule(principal, annualRatePercent, termYears float64) []domain.AmortizationEntry {
	if principal <= 0 || termYears <= 0 {
		return []domain.AmortizationEntry{}
	}

	numPayments := int(math.Round(termYears * MonthsPerYear))
	monthlyRate := annualRatePercent / 100 / MonthsPerYear
	if monthlyRate < 0 {
		monthlyRate = 0
	}

	payment := rawMonthlyPayment(principal, annualRatePercent, termYears)
	entries := make([]domain.AmortizationEntry, 0, numPayments)

	balance := principal
	totalInterestPaid := 0.0
	totalPrincipalPaid := 0.0

	for month := 1; month <= numPayments; month++ {
		interest := balance * monthlyRate
		principalPortion := payment - interest

		balance -= principalPortion
		// Floating-point residue in the final period can dip below zero.
		if balance < 0 {
			balance = 0
		}

		totalInterestPaid += interest
		totalPrincipalPaid += principalPortion

		entries = append(entries, domain.AmortizationEntry{
			Month:              month,
			Payment:            roundTo2Decimals(payment),
			Principal:          roundTo2Decimals(principalPortion),
			Interest:           roundTo2Decimals(interest),
			Balance:            roundTo2Decimals(balance),
			TotalInterestPaid:  roundTo2Decimals(totalInterestPaid),
			TotalPrincipalPaid: roundTo2Decimals(totalPrincipalPaid),
		})
	}

	return entries
}

// SummarizeLoan rolls a loan up into its lifetime totals. Invalid terms
// produce the zero summary, never NaN or Inf.
func SummarizeLoan(principal, annualRatePercent, termYears float64) domain.LoanSummary {
	if principal <= 0 || termYears <= 0 {
		return domain.LoanSummary{}
	}

	monthlyPayment := MonthlyPayment(principal, annualRatePercent, termYears)
	totalPayments := monthlyPayment * termYears * MonthsPerYear
	totalInterest := totalPayments - principal

	return domain.LoanSummary{
		MonthlyPayment: monthlyPayment,
		TotalPayments:  roundTo2Decimals(totalPayments),
		TotalInterest:  roundTo2Decimals(totalInterest),
		TotalCost:      roundTo2Decimals(principal + totalInterest),
		EffectiveRate:  roundTo2Decimals(totalInterest / principal * 100),
	}
}

// RemainingBalance returns the loan balance after monthsElapsed payments.
// Non-positive months return the untouched principal; months past the end of
// the schedule return 0.
func RemainingBalance(principal, annualRatePercent, termYears float64, monthsElapsed int) float64 {
	if monthsElapsed <= 0 {
		return principal
	}

	schedule := GenerateSchedule(principal, annualRatePercent, termYears)
	if monthsElapsed > len(schedule) {
		return 0
	}

	return schedule[monthsElapsed-1].Balance
}

// AggregateByYear groups a schedule into twelve-month chunks for report
// rollups. A trailing partial year is aggregated as-is.
func AggregateByYear(entries []domain.AmortizationEntry) []domain.YearlyAmortization {
	chunks := lo.Chunk(entries, MonthsPerYear)
	years := make([]domain.YearlyAmortization, 0, len(chunks))

	for i, months := range chunks {
		years = append(years, domain.YearlyAmortization{
			Year: i + 1,
			TotalPaid: roundTo2Decimals(lo.SumBy(months, func(e domain.AmortizationEntry) float64 {
				return e.Payment
			})),
			PrincipalPaid: roundTo2Decimals(lo.SumBy(months, func(e domain.AmortizationEntry) float64 {
				return e.Principal
			})),
			InterestPaid: roundTo2Decimals(lo.SumBy(months, func(e domain.AmortizationEntry) float64 {
				return e.Interest
			})),
			EndingBalance: months[len(months)-1].Balance,
		})
	}

	return years
}
