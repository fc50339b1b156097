package underwriting

import "github.com/Dan9191/underwriting-service/internal/models"

// GenerateScenarios recomputes expenses and returns under the low, mid and high
// adjustments of the assumptions' scenario table. The loan is shared; rent,
// expense rates and vacancy are perturbed on private copies.
func GenerateScenarios(p models.Property, loan models.LoanTerms, a models.FinancialAssumptions) models.ScenarioResult {
	return models.ScenarioResult{
		Low:  runScenario(p, loan, a, a.Scenarios.Low),
		Mid:  runScenario(p, loan, a, a.Scenarios.Mid),
		High: runScenario(p, loan, a, a.Scenarios.High),
	}
}

func runScenario(p models.Property, loan models.LoanTerms, a models.FinancialAssumptions, adj models.ScenarioAdjustment) models.ReturnMetrics {
	p.EstimatedRent *= adj.RentMultiplier

	scaled := a
	scaled.PropertyTaxRate *= adj.ExpenseMultiplier
	scaled.InsuranceRate *= adj.ExpenseMultiplier
	scaled.MaintenanceRate *= adj.ExpenseMultiplier
	scaled.ManagementFraction *= adj.ExpenseMultiplier
	scaled.Utilities = a.Utilities.Scale(adj.ExpenseMultiplier)
	scaled.VacancyFraction = clamp(a.VacancyFraction+adj.VacancyDelta, 0, 1)

	expenses := ComputeExpenses(p, loan.PurchasePrice, scaled)
	return ComputeReturns(p, loan, expenses, loan.PurchasePrice, a)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
