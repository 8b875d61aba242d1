package domain

// DealAnalysisInput describes a flip deal. Optional fields left at zero take
// the documented defaults: selling costs fall back to 6% of ARV, the down
// payment to the purchase price, and the loan term to 30 years.
type DealAnalysisInput struct {
	PurchasePrice    float64 `json:"purchasePrice"`
	AfterRepairValue float64 `json:"afterRepairValue"`
	RepairCosts      float64 `json:"repairCosts"`
	HoldingCosts     float64 `json:"holdingCosts,omitempty"`
	ClosingCosts     float64 `json:"closingCosts,omitempty"`
	SellingCosts     float64 `json:"sellingCosts,omitempty"`
	DownPayment      float64 `json:"downPayment,omitempty"`
	LoanAmount       float64 `json:"loanAmount,omitempty"`
	InterestRate     float64 `json:"interestRate,omitempty"`
	LoanTermYears    float64 `json:"loanTermYears,omitempty"`
}

// DealAnalysisResult is the profitability picture of a deal. Currency fields
// are whole units, percentages carry one decimal. MonthlyPayment is nil for
// unfinanced deals.
type DealAnalysisResult struct {
	TotalInvestment    float64  `json:"totalInvestment"`
	ProjectedProfit    float64  `json:"projectedProfit"`
	ReturnOnInvestment float64  `json:"returnOnInvestment"`
	CashOnCashReturn   float64  `json:"cashOnCashReturn"`
	MaxAllowableOffer  float64  `json:"maxAllowableOffer"`
	Equity             float64  `json:"equity"`
	MonthlyPayment     *float64 `json:"monthlyPayment,omitempty"`
}
