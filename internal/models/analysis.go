package models

import "time"

// RiskAssessment represents the qualitative risk scoring of a property
type RiskAssessment struct {
	Score      int       `json:"score"`
	Level      RiskLevel `json:"level"`
	Factors    []string  `json:"factors"`
	Mitigation []string  `json:"mitigation"`
}

// Verdict is the investment recommendation for a property
type Verdict string

const (
	VerdictStrongBuy Verdict = "STRONG BUY"
	VerdictBuy       Verdict = "BUY"
	VerdictHold      Verdict = "HOLD"
	VerdictPass      Verdict = "PASS"
)

// Recommendation represents the verdict and the reason behind it
type Recommendation struct {
	Verdict Verdict `json:"verdict"`
	Reason  string  `json:"reason"`
}

// Analysis represents the full underwriting output for one property
type Analysis struct {
	ID             string                    `json:"id"`
	PropertyID     string                    `json:"property_id"`
	Property       Property                  `json:"property"`
	Assumptions    FinancialAssumptions      `json:"assumptions"`
	Requirement    ClientRequirement         `json:"requirement"`
	Loan           LoanTerms                 `json:"loan"`
	Expenses       OperatingExpenseBreakdown `json:"expenses"`
	Returns        ReturnMetrics             `json:"returns"`
	Scenarios      ScenarioResult            `json:"scenarios"`
	WorstCase      WorstCase                 `json:"worst_case"`
	Tax            TaxImplications           `json:"tax"`
	Plan           OptimizationPlan          `json:"plan"`
	Risk           RiskAssessment            `json:"risk"`
	Recommendation Recommendation            `json:"recommendation"`
	Seal           string                    `json:"seal,omitempty"`
	CreatedAt      time.Time                 `json:"created_at"`
}

// PortfolioSummary represents aggregate metrics over several analyses
type PortfolioSummary struct {
	Properties          int     `json:"properties"`
	TotalCashInvested   float64 `json:"total_cash_invested"`
	TotalAnnualCashFlow float64 `json:"total_annual_cash_flow"`
	AvgCashOnCash       float64 `json:"avg_cash_on_cash"`
	AvgAppreciation     float64 `json:"avg_appreciation"`
	AvgTaxSavings       float64 `json:"avg_tax_savings"`
	AvgPrincipalPaydown float64 `json:"avg_principal_paydown"`
	AvgTotal            float64 `json:"avg_total"`
	PortfolioCashOnCash float64 `json:"portfolio_cash_on_cash"`
	Undefined           int     `json:"undefined"` // analyses excluded because their returns were undefined
}
