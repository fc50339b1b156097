package underwriting

import "github.com/Dan9191/underwriting-service/internal/models"

// ComputeExpenses projects the monthly operating expenses of a property.
// Price-based items use the purchase price, rent-based items the estimated rent,
// and the utility table is added unchanged.
func ComputeExpenses(p models.Property, purchasePrice float64, a models.FinancialAssumptions) models.OperatingExpenseBreakdown {
	return models.OperatingExpenseBreakdown{
		PropertyTax: purchasePrice * a.PropertyTaxRate / 12,
		Insurance:   purchasePrice * a.InsuranceRate / 12,
		Maintenance: purchasePrice * a.MaintenanceRate / 12,
		Management:  p.EstimatedRent * a.ManagementFraction,
		VacancyLoss: p.EstimatedRent * a.VacancyFraction,
		Utilities:   a.Utilities,
	}
}
