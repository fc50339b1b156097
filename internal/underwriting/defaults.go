package underwriting

import "github.com/Dan9191/underwriting-service/internal/models"

const (
	// MaxInterestRate rejects annual rates that are almost certainly unit mistakes (6.5 instead of 0.065)
	MaxInterestRate = 0.20
	// ScheduleEpsilon is the tolerance, in dollars, for amortization rounding drift
	ScheduleEpsilon = 0.01
)

// DefaultUtilities returns the fixed monthly utility table
func DefaultUtilities() models.UtilityCosts {
	return models.UtilityCosts{
		Internet:        100,
		Water:           60,
		Electricity:     300,
		NaturalGas:      0,
		PestControl:     50,
		PoolMaintenance: 150,
	}
}

// DefaultScenarios returns the low/mid/high perturbation table.
// Vacancy deltas move the default 5% vacancy to 8% (low) and 3% (high).
func DefaultScenarios() models.ScenarioTable {
	return models.ScenarioTable{
		Low:  models.ScenarioAdjustment{Label: "low", RentMultiplier: 0.90, ExpenseMultiplier: 1.10, VacancyDelta: 0.03},
		Mid:  models.ScenarioAdjustment{Label: "mid", RentMultiplier: 1, ExpenseMultiplier: 1},
		High: models.ScenarioAdjustment{Label: "high", RentMultiplier: 1.10, ExpenseMultiplier: 0.90, VacancyDelta: -0.02},
	}
}

// DefaultTaxProfile returns a 25% federal, 5% state and 2% local bracket.
// Interest, property tax, depreciation and management are fully deductible;
// maintenance and insurance are not.
func DefaultTaxProfile() models.TaxProfile {
	return models.TaxProfile{
		FederalRate: 0.25,
		StateRate:   0.05,
		LocalRate:   0.02,
		Deductions: models.DeductionRates{
			MortgageInterest: 1,
			PropertyTax:      1,
			Depreciation:     1,
			Management:       1,
		},
	}
}

// DefaultStress returns the worst-case market: 15% vacancy, rent down 10%,
// expenses up 20% and the interest rate two points higher.
func DefaultStress() models.StressAssumptions {
	return models.StressAssumptions{
		VacancyFraction: 0.15,
		RentDecrease:    0.10,
		ExpenseIncrease: 0.20,
		RateIncrease:    0.02,
	}
}

// DefaultAssumptions returns the documented rate table.
// The land-value fraction of 20% leaves 80% of the price depreciable over 27.5 years.
func DefaultAssumptions() models.FinancialAssumptions {
	return models.FinancialAssumptions{
		DownPaymentFraction:    0.20,
		MinDownPaymentFraction: 0.20,
		InterestRate:           0.065,
		LoanTermYears:          30,
		ClosingCostFraction:    0.03,
		PropertyTaxRate:        0.025,
		InsuranceRate:          0.008,
		MaintenanceRate:        0.015,
		ManagementFraction:     0.08,
		VacancyFraction:        0.05,
		AppreciationRate:       0.03,
		InvestorTaxRate:        0.25,
		DepreciationYears:      27.5,
		LandValueFraction:      0.20,
		Utilities:              DefaultUtilities(),
		Scenarios:              DefaultScenarios(),
		Tax:                    DefaultTaxProfile(),
		Stress:                 DefaultStress(),
	}
}
