package service

// Business assumptions baked into the analysis formulas. These are fixed on
// purpose: making them configurable would change observable results.
const (
	// DefaultSellingCostRate applies when a deal omits selling costs:
	// 6% of the after-repair value.
	DefaultSellingCostRate = 0.06

	// SeventyPercentRule caps the maximum allowable offer at 70% of ARV
	// before repair costs.
	SeventyPercentRule = 0.70

	// DefaultLoanTermYears is assumed for financed deals that do not
	// specify a term.
	DefaultLoanTermYears = 30.0

	// DefaultVacancyRate is deducted from gross rent when the caller does
	// not supply a vacancy assumption.
	DefaultVacancyRate = 0.08

	MonthsPerYear = 12
)
