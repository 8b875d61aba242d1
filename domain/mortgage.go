package domain

// LoanTerms are the parameters of a fixed-rate loan. They carry no identity:
// every calculation recomputes from scratch.
type LoanTerms struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	TermYears         float64 `json:"termYears"`
}

// AmortizationEntry is one month of a loan's payment schedule. All currency
// fields are rounded to 2 decimals.
type AmortizationEntry struct {
	Month              int     `json:"month"`
	Payment            float64 `json:"payment"`
	Principal          float64 `json:"principal"`
	Interest           float64 `json:"interest"`
	Balance            float64 `json:"balance"`
	TotalInterestPaid  float64 `json:"totalInterestPaid"`
	TotalPrincipalPaid float64 `json:"totalPrincipalPaid"`
}

// YearlyAmortization aggregates twelve schedule entries for report rollups.
type YearlyAmortization struct {
	Year          int     `json:"year"`
	TotalPaid     float64 `json:"totalPaid"`
	PrincipalPaid float64 `json:"principalPaid"`
	InterestPaid  float64 `json:"interestPaid"`
	EndingBalance float64 `json:"endingBalance"`
}

// LoanSummary holds the derived totals for a loan. All zeros when the
// underlying terms are invalid.
type LoanSummary struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayments  float64 `json:"totalPayments"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalCost      float64 `json:"totalCost"`
	EffectiveRate  float64 `json:"effectiveRate"`
}
