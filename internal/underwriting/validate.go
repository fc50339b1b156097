package underwriting

import "github.com/Dan9191/underwriting-service/internal/models"

// ValidateProperty checks the property fields the core depends on
func ValidateProperty(p models.Property) error {
	if p.PurchasePrice <= 0 {
		return invalid("purchase price", p.PurchasePrice, "must be positive")
	}
	if p.EstimatedRent < 0 {
		return invalid("estimated rent", p.EstimatedRent, "must not be negative")
	}
	return nil
}

// ValidateAssumptions checks that a rate table can drive an analysis
func ValidateAssumptions(a models.FinancialAssumptions) error {
	if a.DownPaymentFraction < a.MinDownPaymentFraction {
		return invalid("down payment fraction", a.DownPaymentFraction, "below the allowed minimum")
	}
	if a.DownPaymentFraction < 0 || a.DownPaymentFraction > 1 {
		return invalid("down payment fraction", a.DownPaymentFraction, "must be between 0 and 1")
	}
	if a.InterestRate < 0 || a.InterestRate > MaxInterestRate {
		return invalid("interest rate", a.InterestRate, "must be between 0 and 0.20")
	}
	if a.LoanTermYears <= 0 {
		return invalid("loan term", float64(a.LoanTermYears), "must be positive")
	}
	if a.DepreciationYears <= 0 {
		return invalid("depreciation period", a.DepreciationYears, "must be positive")
	}
	if a.LandValueFraction < 0 || a.LandValueFraction > 1 {
		return invalid("land value fraction", a.LandValueFraction, "must be between 0 and 1")
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"closing cost fraction", a.ClosingCostFraction},
		{"property tax rate", a.PropertyTaxRate},
		{"insurance rate", a.InsuranceRate},
		{"maintenance rate", a.MaintenanceRate},
		{"management fraction", a.ManagementFraction},
		{"vacancy fraction", a.VacancyFraction},
		{"investor tax rate", a.InvestorTaxRate},
		{"federal tax rate", a.Tax.FederalRate},
		{"state tax rate", a.Tax.StateRate},
		{"local tax rate", a.Tax.LocalRate},
		{"stress expense increase", a.Stress.ExpenseIncrease},
		{"stress rate increase", a.Stress.RateIncrease},
	} {
		if f.value < 0 {
			return invalid(f.name, f.value, "must not be negative")
		}
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"mortgage interest deduction", a.Tax.Deductions.MortgageInterest},
		{"property tax deduction", a.Tax.Deductions.PropertyTax},
		{"depreciation deduction", a.Tax.Deductions.Depreciation},
		{"management deduction", a.Tax.Deductions.Management},
		{"maintenance deduction", a.Tax.Deductions.Maintenance},
		{"insurance deduction", a.Tax.Deductions.Insurance},
		{"stress vacancy fraction", a.Stress.VacancyFraction},
		{"stress rent decrease", a.Stress.RentDecrease},
	} {
		if f.value < 0 || f.value > 1 {
			return invalid(f.name, f.value, "must be between 0 and 1")
		}
	}
	for _, s := range []struct {
		name string
		adj  models.ScenarioAdjustment
	}{{"low", a.Scenarios.Low}, {"mid", a.Scenarios.Mid}, {"high", a.Scenarios.High}} {
		label := s.adj.Label
		if label == "" {
			label = s.name
		}
		if s.adj.RentMultiplier <= 0 {
			return invalid(label+" scenario rent multiplier", s.adj.RentMultiplier, "must be positive")
		}
		if s.adj.ExpenseMultiplier <= 0 {
			return invalid(label+" scenario expense multiplier", s.adj.ExpenseMultiplier, "must be positive")
		}
	}
	return nil
}
