package underwriting

import "github.com/Dan9191/underwriting-service/internal/models"

// WorstCase reprices the property under the stress assumptions: rent cut,
// every expense rate and utility raised, vacancy replaced and the same loan
// amount refinanced at the higher rate. The base loan is not modified.
func WorstCase(p models.Property, loan models.LoanTerms, a models.FinancialAssumptions) models.WorstCase {
	st := a.Stress
	factor := 1 + st.ExpenseIncrease

	p.EstimatedRent *= 1 - st.RentDecrease

	stressed := a
	stressed.PropertyTaxRate *= factor
	stressed.InsuranceRate *= factor
	stressed.MaintenanceRate *= factor
	stressed.ManagementFraction *= factor
	stressed.Utilities = a.Utilities.Scale(factor)
	stressed.VacancyFraction = st.VacancyFraction
	expenses := ComputeExpenses(p, loan.PurchasePrice, stressed).Total()

	rate := a.InterestRate + st.RateIncrease
	payment := MonthlyPayment(loan.LoanAmount, rate/12, loan.Periods)

	w := models.WorstCase{
		Stress:          st,
		MonthlyRent:     p.EstimatedRent,
		MonthlyExpenses: expenses,
		InterestRate:    rate,
		MonthlyPayment:  payment,
		MonthlyCashFlow: p.EstimatedRent - expenses - payment,
	}
	w.AnnualCashFlow = w.MonthlyCashFlow * 12
	if loan.CashInvested <= 0 {
		w.Undefined = true
		return w
	}
	w.CashOnCash = w.AnnualCashFlow / loan.CashInvested
	return w
}
