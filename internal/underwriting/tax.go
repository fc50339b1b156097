package underwriting

import "github.com/Dan9191/underwriting-service/internal/models"

// ComputeTaxImplications estimates first-year deductions and the resulting
// savings for a W-2 investor. Deductions are taken at the profile's marginal
// rates; the adjusted cash-on-cash shares the cash-invested denominator.
func ComputeTaxImplications(loan models.LoanTerms, expenses models.OperatingExpenseBreakdown,
	returns models.ReturnMetrics, a models.FinancialAssumptions) models.TaxImplications {
	d := a.Tax.Deductions
	deductible := models.DeductibleExpenses{
		MortgageInterest: loan.FirstYearInterest(),
		PropertyTax:      expenses.PropertyTax * 12,
		Depreciation:     loan.PurchasePrice * (1 - a.LandValueFraction) / a.DepreciationYears,
		Management:       expenses.Management * 12,
		Maintenance:      expenses.Maintenance * 12,
		Insurance:        expenses.Insurance * 12,
	}

	total := deductible.MortgageInterest*d.MortgageInterest +
		deductible.PropertyTax*d.PropertyTax +
		deductible.Depreciation*d.Depreciation +
		deductible.Management*d.Management +
		deductible.Maintenance*d.Maintenance +
		deductible.Insurance*d.Insurance

	t := models.TaxImplications{
		Expenses:        deductible,
		TotalDeductions: total,
		FederalSavings:  total * a.Tax.FederalRate,
		StateSavings:    total * a.Tax.StateRate,
		LocalSavings:    total * a.Tax.LocalRate,
	}
	t.TotalSavings = t.FederalSavings + t.StateSavings + t.LocalSavings
	t.AdjustedAnnualCashFlow = returns.AnnualCashFlow + t.TotalSavings
	if returns.CashInvested <= 0 {
		t.Undefined = true
		return t
	}
	t.AdjustedCashOnCash = t.AdjustedAnnualCashFlow / returns.CashInvested
	return t
}
