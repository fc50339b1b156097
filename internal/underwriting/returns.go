package underwriting

import "github.com/Dan9191/underwriting-service/internal/models"

// ComputeReturns combines rent, operating expenses and debt service into the
// cash-on-cash, appreciation, tax-savings and principal-paydown returns.
// All four share the cash invested (down payment plus closing costs) as denominator.
func ComputeReturns(p models.Property, loan models.LoanTerms, expenses models.OperatingExpenseBreakdown,
	purchasePrice float64, a models.FinancialAssumptions) models.ReturnMetrics {
	return computeReturns(p.EstimatedRent, loan, expenses, purchasePrice, a, 0)
}

// computeReturns adds extraInvested (one-time action costs) to the denominator
func computeReturns(rent float64, loan models.LoanTerms, expenses models.OperatingExpenseBreakdown,
	purchasePrice float64, a models.FinancialAssumptions, extraInvested float64) models.ReturnMetrics {
	totalExpenses := expenses.Total()
	noi := rent - totalExpenses
	monthlyCashFlow := noi - loan.MonthlyPayment
	invested := loan.CashInvested + extraInvested

	m := models.ReturnMetrics{
		MonthlyRent:     rent,
		MonthlyExpenses: totalExpenses,
		NetOperating:    noi,
		MonthlyCashFlow: monthlyCashFlow,
		AnnualCashFlow:  monthlyCashFlow * 12,
		CashInvested:    invested,
	}
	if invested <= 0 {
		m.Undefined = true
		m.UndefinedReason = "cash invested is zero"
		return m
	}

	depreciableBasis := purchasePrice * (1 - a.LandValueFraction)
	annualTaxSavings := depreciableBasis / a.DepreciationYears * a.InvestorTaxRate

	m.CashOnCash = m.AnnualCashFlow / invested
	m.Appreciation = purchasePrice * a.AppreciationRate / invested
	m.TaxSavings = annualTaxSavings / invested
	m.PrincipalPaydown = loan.FirstYearPrincipal() / invested
	m.Total = m.CashOnCash + m.Appreciation + m.TaxSavings + m.PrincipalPaydown
	return m
}
