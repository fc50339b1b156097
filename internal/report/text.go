package report

import (
	"fmt"
	"strings"

	"github.com/Dan9191/underwriting-service/internal/models"
)

// Summary renders a plain-text digest of an analysis
func Summary(a *models.Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Property: %s\n", a.Property.Address)
	fmt.Fprintf(&b, "Purchase price: %s\n", USD(a.Loan.PurchasePrice))
	fmt.Fprintf(&b, "Down payment: %s, closing costs: %s\n", USD(a.Loan.DownPayment), USD(a.Loan.ClosingCosts))
	fmt.Fprintf(&b, "Monthly mortgage: %s over %d payments\n", USD(a.Loan.MonthlyPayment), a.Loan.Periods)
	fmt.Fprintf(&b, "Monthly rent: %s, expenses: %s\n", USD(a.Returns.MonthlyRent), USD(a.Returns.MonthlyExpenses))
	fmt.Fprintf(&b, "Monthly cash flow: %s\n", USD(a.Returns.MonthlyCashFlow))

	b.WriteString("\nReturns\n")
	writeReturns(&b, "  ", a.Returns)

	b.WriteString("\nScenarios (cash-on-cash)\n")
	for _, s := range []struct {
		label string
		m     models.ReturnMetrics
	}{{"low", a.Scenarios.Low}, {"mid", a.Scenarios.Mid}, {"high", a.Scenarios.High}} {
		fmt.Fprintf(&b, "  %-4s %s\n", s.label, ratio(s.m, s.m.CashOnCash))
	}

	w := a.WorstCase
	fmt.Fprintf(&b, "\nWorst case (%s vacancy, rent -%s, expenses +%s, rate %s)\n",
		Percent(w.Stress.VacancyFraction), Percent(w.Stress.RentDecrease), Percent(w.Stress.ExpenseIncrease), Percent(w.InterestRate))
	fmt.Fprintf(&b, "  monthly cash flow: %s\n", USD(w.MonthlyCashFlow))
	fmt.Fprintf(&b, "  cash-on-cash:      %s\n", undefinedOr(w.Undefined, w.CashOnCash))

	fmt.Fprintf(&b, "\nTax implications (first year)\n")
	fmt.Fprintf(&b, "  deductions:        %s\n", USD(a.Tax.TotalDeductions))
	fmt.Fprintf(&b, "  tax savings:       %s\n", USD(a.Tax.TotalSavings))
	fmt.Fprintf(&b, "  after-tax cash-on-cash: %s\n", undefinedOr(a.Tax.Undefined, a.Tax.AdjustedCashOnCash))

	fmt.Fprintf(&b, "\nOptimization toward %s cash-on-cash\n", Percent(a.Plan.TargetCashOnCash))
	if len(a.Plan.Steps) == 0 {
		b.WriteString("  no actions needed or available\n")
	}
	for i, step := range a.Plan.Steps {
		fmt.Fprintf(&b, "  %d. %s (%s, ROI %s) -> %s\n", i+1, step.Action.Title, USD(step.Action.Cost),
			ROI(float64(step.MarginalROI)), ratio(step.ProjectedReturns, step.ProjectedReturns.CashOnCash))
	}
	for _, s := range a.Plan.Skipped {
		fmt.Fprintf(&b, "  skipped %s: %s\n", s.Action.Title, s.Reason)
	}
	fmt.Fprintf(&b, "  target met: %t, total cost %s\n", a.Plan.TargetMet, USD(a.Plan.TotalCost))

	fmt.Fprintf(&b, "\nRisk: %s (score %d)\n", a.Risk.Level, a.Risk.Score)
	for _, f := range a.Risk.Factors {
		fmt.Fprintf(&b, "  - %s\n", f)
	}
	fmt.Fprintf(&b, "Recommendation: %s - %s\n", a.Recommendation.Verdict, a.Recommendation.Reason)
	return b.String()
}

// Schedule renders the amortization table of a loan
func Schedule(loan models.LoanTerms) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%6s %14s %14s %16s\n", "period", "principal", "interest", "balance")
	for _, p := range loan.Schedule {
		fmt.Fprintf(&b, "%6d %14s %14s %16s\n", p.Period, USD(p.Principal), USD(p.Interest), USD(p.RemainingBalance))
	}
	return b.String()
}

func writeReturns(b *strings.Builder, indent string, m models.ReturnMetrics) {
	fmt.Fprintf(b, "%scash-on-cash:      %s\n", indent, ratio(m, m.CashOnCash))
	fmt.Fprintf(b, "%sappreciation:      %s\n", indent, ratio(m, m.Appreciation))
	fmt.Fprintf(b, "%stax savings:       %s\n", indent, ratio(m, m.TaxSavings))
	fmt.Fprintf(b, "%sprincipal paydown: %s\n", indent, ratio(m, m.PrincipalPaydown))
	fmt.Fprintf(b, "%stotal:             %s\n", indent, ratio(m, m.Total))
}

// ratio prints a component of m, or "undefined" when m could not be computed
func ratio(m models.ReturnMetrics, v float64) string {
	return undefinedOr(m.Undefined, v)
}

func undefinedOr(undefined bool, v float64) string {
	if undefined {
		return "undefined"
	}
	return Percent(v)
}

// Portfolio renders the aggregate returns of several analyses
func Portfolio(s models.PortfolioSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Portfolio: %d properties", s.Properties)
	if s.Undefined > 0 {
		fmt.Fprintf(&b, " (%d with undefined returns excluded)", s.Undefined)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  cash invested:     %s\n", USD(s.TotalCashInvested))
	fmt.Fprintf(&b, "  annual cash flow:  %s\n", USD(s.TotalAnnualCashFlow))
	fmt.Fprintf(&b, "  cash-on-cash:      %s\n", Percent(s.PortfolioCashOnCash))
	fmt.Fprintf(&b, "  avg total return:  %s\n", Percent(s.AvgTotal))
	return b.String()
}
