package underwriting

import (
	"fmt"

	"github.com/Dan9191/underwriting-service/internal/models"
)

const (
	riskFactorHighDOM      = "High days on market"
	riskFactorModerateDOM  = "Moderate days on market"
	riskFactorNegativeFlow = "Negative cash flow"
	riskFactorLowFlow      = "Low cash flow"
	riskFactorLowCoC       = "Low CoC return"
	riskFactorModerateCoC  = "Moderate CoC return"
	riskFactorOlder        = "Older property"
	riskFactorUndefined    = "Undefined returns"
)

var mitigations = map[string]string{
	riskFactorNegativeFlow: "Implement optimization strategies to improve cash flow",
	riskFactorLowCoC:       "Consider alternative properties or financing options",
	riskFactorHighDOM:      "Conduct thorough market analysis and price optimization",
	riskFactorOlder:        "Budget for increased maintenance and potential renovations",
}

// AssessRisk scores market, cash-flow, return and age risk for a property.
// Property age is measured against referenceYear; zero disables the age factor.
func AssessRisk(p models.Property, returns models.ReturnMetrics, referenceYear int) models.RiskAssessment {
	var factors []string
	score := 0
	add := func(factor string, points int) {
		factors = append(factors, factor)
		score += points
	}

	switch {
	case p.DaysOnMarket > 90:
		add(riskFactorHighDOM, 2)
	case p.DaysOnMarket > 60:
		add(riskFactorModerateDOM, 1)
	}

	switch {
	case returns.MonthlyCashFlow < 0:
		add(riskFactorNegativeFlow, 3)
	case returns.MonthlyCashFlow < 200:
		add(riskFactorLowFlow, 1)
	}

	switch {
	case returns.Undefined:
		add(riskFactorUndefined, 2)
	case returns.CashOnCash < 0.05:
		add(riskFactorLowCoC, 2)
	case returns.CashOnCash < 0.08:
		add(riskFactorModerateCoC, 1)
	}

	if referenceYear > 0 && p.YearBuilt > 0 && referenceYear-p.YearBuilt > 30 {
		add(riskFactorOlder, 1)
	}

	level := models.RiskLow
	switch {
	case score >= 5:
		level = models.RiskHigh
	case score >= 3:
		level = models.RiskMedium
	}

	mitigation := []string{}
	for _, f := range factors {
		if m, ok := mitigations[f]; ok {
			mitigation = append(mitigation, m)
		}
	}
	if factors == nil {
		factors = []string{}
	}

	return models.RiskAssessment{Score: score, Level: level, Factors: factors, Mitigation: mitigation}
}

// Judge turns returns, risk and the client's limits into a verdict
func Judge(loan models.LoanTerms, returns models.ReturnMetrics, risk models.RiskAssessment, req models.ClientRequirement) models.Recommendation {
	switch {
	case req.MaxOutOfPocket > 0 && loan.CashInvested > req.MaxOutOfPocket:
		return models.Recommendation{Verdict: models.VerdictPass,
			Reason: fmt.Sprintf("cash invested %.0f exceeds out-of-pocket limit %.0f", loan.CashInvested, req.MaxOutOfPocket)}
	case req.MaxPurchasePrice > 0 && loan.PurchasePrice > req.MaxPurchasePrice:
		return models.Recommendation{Verdict: models.VerdictPass,
			Reason: fmt.Sprintf("purchase price %.0f exceeds limit %.0f", loan.PurchasePrice, req.MaxPurchasePrice)}
	case returns.Undefined:
		return models.Recommendation{Verdict: models.VerdictPass, Reason: returns.UndefinedReason}
	case risk.Level == models.RiskHigh:
		return models.Recommendation{Verdict: models.VerdictPass, Reason: "high risk level"}
	case returns.CashOnCash >= 0.09:
		return models.Recommendation{Verdict: models.VerdictStrongBuy, Reason: "excellent CoC return"}
	case returns.CashOnCash >= 0.07:
		return models.Recommendation{Verdict: models.VerdictBuy, Reason: "good CoC return"}
	case returns.CashOnCash >= 0.05:
		return models.Recommendation{Verdict: models.VerdictHold, Reason: "acceptable CoC return"}
	default:
		return models.Recommendation{Verdict: models.VerdictPass, Reason: "insufficient CoC return"}
	}
}
