package models

// ReturnMetrics represents the four-component annual return on cash invested.
// When Undefined is set the ratios could not be computed and must not be read as zero.
type ReturnMetrics struct {
	CashOnCash       float64 `json:"cash_on_cash"`
	Appreciation     float64 `json:"appreciation"`
	TaxSavings       float64 `json:"tax_savings"`
	PrincipalPaydown float64 `json:"principal_paydown"`
	Total            float64 `json:"total"`

	MonthlyRent     float64 `json:"monthly_rent"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	NetOperating    float64 `json:"net_operating_income"` // monthly
	MonthlyCashFlow float64 `json:"monthly_cash_flow"`
	AnnualCashFlow  float64 `json:"annual_cash_flow"`
	CashInvested    float64 `json:"cash_invested"`

	Undefined       bool   `json:"undefined"`
	UndefinedReason string `json:"undefined_reason,omitempty"`
}

// ScenarioResult holds one ReturnMetrics per scenario label
type ScenarioResult struct {
	Low  ReturnMetrics `json:"low"`
	Mid  ReturnMetrics `json:"mid"`
	High ReturnMetrics `json:"high"`
}
