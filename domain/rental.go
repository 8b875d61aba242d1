package domain

// RentalCashFlowInput describes a rental property's monthly numbers. A zero
// VacancyRate means the 8% default; PropertyManagementRate defaults to 0.
type RentalCashFlowInput struct {
	MonthlyRent            float64 `json:"monthlyRent"`
	MonthlyExpenses        float64 `json:"monthlyExpenses"`
	MonthlyMortgage        float64 `json:"monthlyMortgage"`
	VacancyRate            float64 `json:"vacancyRate,omitempty"`
	PropertyManagementRate float64 `json:"propertyManagementRate,omitempty"`
}

// RentalCashFlowResult carries the income waterfall down to annual cash flow,
// rounded to whole currency units.
type RentalCashFlowResult struct {
	GrossMonthlyIncome   float64 `json:"grossMonthlyIncome"`
	EffectiveGrossIncome float64 `json:"effectiveGrossIncome"`
	NetOperatingIncome   float64 `json:"netOperatingIncome"`
	MonthlyCashFlow      float64 `json:"monthlyCashFlow"`
	AnnualCashFlow       float64 `json:"annualCashFlow"`
}
