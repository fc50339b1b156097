package underwriting

import "github.com/Dan9191/underwriting-service/internal/models"

// Analyze runs the full pipeline for one property: loan, expenses, returns,
// scenarios, worst case, tax effect, optimization plan, risk and verdict.
// The returned analysis has no ID or timestamp; callers that persist it assign those.
func Analyze(p models.Property, a models.FinancialAssumptions, req models.ClientRequirement,
	catalog []models.OptimizationAction) (models.Analysis, error) {
	if err := ValidateProperty(p); err != nil {
		return models.Analysis{}, err
	}
	loan, err := ComputeLoan(p.PurchasePrice, a)
	if err != nil {
		return models.Analysis{}, err
	}

	expenses := ComputeExpenses(p, p.PurchasePrice, a)
	returns := ComputeReturns(p, loan, expenses, p.PurchasePrice, a)
	risk := AssessRisk(p, returns, a.ReferenceYear)

	return models.Analysis{
		PropertyID:     p.ID,
		Property:       p,
		Assumptions:    a,
		Requirement:    req,
		Loan:           loan,
		Expenses:       expenses,
		Returns:        returns,
		Scenarios:      GenerateScenarios(p, loan, a),
		WorstCase:      WorstCase(p, loan, a),
		Tax:            ComputeTaxImplications(loan, expenses, returns, a),
		Plan:           Recommend(p, loan, returns, catalog, req, a),
		Risk:           risk,
		Recommendation: Judge(loan, returns, risk, req),
	}, nil
}
