package underwriting

import "github.com/Dan9191/underwriting-service/internal/models"

// DefaultCatalog builds the standard set of optimization actions for a property
func DefaultCatalog(p models.Property, expenses models.OperatingExpenseBreakdown) []models.OptimizationAction {
	catalog := make([]models.OptimizationAction, 0, 5)

	if rentIncrease := p.EstimatedRent * 0.10; rentIncrease > 0 {
		catalog = append(catalog, models.OptimizationAction{
			Title:     "Rental rate optimization",
			Category:  models.CategoryRevenue,
			RentDelta: rentIncrease,
			Risk:      models.RiskLow,
		})
	}
	if expenses.Management > 0 {
		catalog = append(catalog, models.OptimizationAction{
			Title:        "Self-management",
			Category:     models.CategoryOperational,
			ExpenseDelta: -expenses.Management,
			Risk:         models.RiskMedium,
		})
	}

	return append(catalog,
		models.OptimizationAction{
			Title:        "Energy efficiency",
			Category:     models.CategoryImprovement,
			Cost:         500,
			ExpenseDelta: -50,
			Risk:         models.RiskLow,
		},
		models.OptimizationAction{
			Title:     "Curb appeal enhancement",
			Category:  models.CategoryImprovement,
			Cost:      2000,
			RentDelta: 100,
			Risk:      models.RiskLow,
		},
		models.OptimizationAction{
			Title:     "Kitchen updates",
			Category:  models.CategoryImprovement,
			Cost:      5000,
			RentDelta: 150,
			Risk:      models.RiskMedium,
		},
	)
}
