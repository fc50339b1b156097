package models

// DeductionRates holds the deductible share (0..1) of each annual expense item
type DeductionRates struct {
	MortgageInterest float64 `json:"mortgage_interest" yaml:"mortgage_interest"`
	PropertyTax      float64 `json:"property_tax" yaml:"property_tax"`
	Depreciation     float64 `json:"depreciation" yaml:"depreciation"`
	Management       float64 `json:"management" yaml:"management"`
	Maintenance      float64 `json:"maintenance" yaml:"maintenance"`
	Insurance        float64 `json:"insurance" yaml:"insurance"`
}

// TaxProfile describes a W-2 investor's marginal tax rates and deduction rules
type TaxProfile struct {
	FederalRate float64        `json:"federal_rate" yaml:"federal_rate"`
	StateRate   float64        `json:"state_rate" yaml:"state_rate"`
	LocalRate   float64        `json:"local_rate" yaml:"local_rate"`
	Deductions  DeductionRates `json:"deductions" yaml:"deductions"`
}

// DeductibleExpenses lists first-year annual amounts eligible for deduction
type DeductibleExpenses struct {
	MortgageInterest float64 `json:"mortgage_interest"`
	PropertyTax      float64 `json:"property_tax"`
	Depreciation     float64 `json:"depreciation"`
	Management       float64 `json:"management"`
	Maintenance      float64 `json:"maintenance"`
	Insurance        float64 `json:"insurance"`
}

// TaxImplications represents the first-year tax effect of owning a property
type TaxImplications struct {
	Expenses               DeductibleExpenses `json:"expenses"`
	TotalDeductions        float64            `json:"total_deductions"`
	FederalSavings         float64            `json:"federal_savings"`
	StateSavings           float64            `json:"state_savings"`
	LocalSavings           float64            `json:"local_savings"`
	TotalSavings           float64            `json:"total_savings"`
	AdjustedAnnualCashFlow float64            `json:"adjusted_annual_cash_flow"` // annual cash flow plus tax savings
	AdjustedCashOnCash     float64            `json:"adjusted_cash_on_cash"`
	Undefined              bool               `json:"undefined"`
}
