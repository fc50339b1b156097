package models

// UtilityCosts holds fixed monthly utility line items
type UtilityCosts struct {
	Internet        float64 `json:"internet" yaml:"internet"`
	Water           float64 `json:"water" yaml:"water"`
	Electricity     float64 `json:"electricity" yaml:"electricity"`
	NaturalGas      float64 `json:"natural_gas" yaml:"natural_gas"`
	PestControl     float64 `json:"pest_control" yaml:"pest_control"`
	PoolMaintenance float64 `json:"pool_maintenance" yaml:"pool_maintenance"`
}

// Total returns the sum of all utility line items
func (u UtilityCosts) Total() float64 {
	return u.Internet + u.Water + u.Electricity + u.NaturalGas + u.PestControl + u.PoolMaintenance
}

// Scale returns a copy with every line item multiplied by factor
func (u UtilityCosts) Scale(factor float64) UtilityCosts {
	return UtilityCosts{
		Internet:        u.Internet * factor,
		Water:           u.Water * factor,
		Electricity:     u.Electricity * factor,
		NaturalGas:      u.NaturalGas * factor,
		PestControl:     u.PestControl * factor,
		PoolMaintenance: u.PoolMaintenance * factor,
	}
}

// FinancialAssumptions holds the rate table used by one analysis run.
// Rates and fractions are expressed as decimals (0.065 for 6.5%).
type FinancialAssumptions struct {
	DownPaymentFraction    float64           `json:"down_payment_fraction" yaml:"down_payment_fraction"`
	MinDownPaymentFraction float64           `json:"min_down_payment_fraction" yaml:"min_down_payment_fraction"`
	InterestRate           float64           `json:"interest_rate" yaml:"interest_rate"` // annual
	LoanTermYears          int               `json:"loan_term_years" yaml:"loan_term_years"`
	ClosingCostFraction    float64           `json:"closing_cost_fraction" yaml:"closing_cost_fraction"`
	PropertyTaxRate        float64           `json:"property_tax_rate" yaml:"property_tax_rate"`
	InsuranceRate          float64           `json:"insurance_rate" yaml:"insurance_rate"`
	MaintenanceRate        float64           `json:"maintenance_rate" yaml:"maintenance_rate"`
	ManagementFraction     float64           `json:"management_fraction" yaml:"management_fraction"`
	VacancyFraction        float64           `json:"vacancy_fraction" yaml:"vacancy_fraction"`
	AppreciationRate       float64           `json:"appreciation_rate" yaml:"appreciation_rate"`
	InvestorTaxRate        float64           `json:"investor_tax_rate" yaml:"investor_tax_rate"`
	DepreciationYears      float64           `json:"depreciation_years" yaml:"depreciation_years"`
	LandValueFraction      float64           `json:"land_value_fraction" yaml:"land_value_fraction"`
	Utilities              UtilityCosts      `json:"utilities" yaml:"utilities"`
	Scenarios              ScenarioTable     `json:"scenarios" yaml:"scenarios"`
	ReferenceYear          int               `json:"reference_year" yaml:"reference_year"` // used for property age in risk scoring
	Tax                    TaxProfile        `json:"tax" yaml:"tax"`
	Stress                 StressAssumptions `json:"stress" yaml:"stress"`
}

// ScenarioAdjustment describes the deterministic perturbation applied for one scenario
type ScenarioAdjustment struct {
	Label             string  `json:"label" yaml:"label"`
	RentMultiplier    float64 `json:"rent_multiplier" yaml:"rent_multiplier"`
	ExpenseMultiplier float64 `json:"expense_multiplier" yaml:"expense_multiplier"`
	VacancyDelta      float64 `json:"vacancy_delta" yaml:"vacancy_delta"`
}

// ScenarioTable holds the low/mid/high adjustments
type ScenarioTable struct {
	Low  ScenarioAdjustment `json:"low" yaml:"low"`
	Mid  ScenarioAdjustment `json:"mid" yaml:"mid"`
	High ScenarioAdjustment `json:"high" yaml:"high"`
}
