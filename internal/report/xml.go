package report

import (
	"math"
	"strconv"

	"github.com/Dan9191/underwriting-service/internal/models"
	"github.com/beevik/etree"
)

// ExportXML renders an analysis as an XML document for spreadsheet and reporting tools
func ExportXML(a *models.Analysis) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Analysis")
	root.CreateAttr("id", a.ID)
	root.CreateAttr("propertyId", a.PropertyID)
	root.CreateAttr("createdAt", a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))

	prop := root.CreateElement("Property")
	prop.CreateElement("Address").SetText(a.Property.Address)
	addNumber(prop, "PurchasePrice", a.Property.PurchasePrice)
	addNumber(prop, "EstimatedRent", a.Property.EstimatedRent)
	prop.CreateElement("YearBuilt").SetText(strconv.Itoa(a.Property.YearBuilt))

	loan := root.CreateElement("Loan")
	addNumber(loan, "DownPayment", a.Loan.DownPayment)
	addNumber(loan, "ClosingCosts", a.Loan.ClosingCosts)
	addNumber(loan, "LoanAmount", a.Loan.LoanAmount)
	addNumber(loan, "MonthlyPayment", a.Loan.MonthlyPayment)
	loan.CreateElement("Periods").SetText(strconv.Itoa(a.Loan.Periods))

	exp := root.CreateElement("Expenses")
	addNumber(exp, "PropertyTax", a.Expenses.PropertyTax)
	addNumber(exp, "Insurance", a.Expenses.Insurance)
	addNumber(exp, "Maintenance", a.Expenses.Maintenance)
	addNumber(exp, "Management", a.Expenses.Management)
	addNumber(exp, "VacancyLoss", a.Expenses.VacancyLoss)
	addNumber(exp, "Utilities", a.Expenses.Utilities.Total())
	addNumber(exp, "Total", a.Expenses.Total())

	addReturns(root.CreateElement("Returns"), a.Returns)

	scenarios := root.CreateElement("Scenarios")
	for _, s := range []struct {
		label string
		m     models.ReturnMetrics
	}{{"low", a.Scenarios.Low}, {"mid", a.Scenarios.Mid}, {"high", a.Scenarios.High}} {
		el := scenarios.CreateElement("Scenario")
		el.CreateAttr("label", s.label)
		addReturns(el, s.m)
	}

	worst := root.CreateElement("WorstCase")
	addNumber(worst, "VacancyFraction", a.WorstCase.Stress.VacancyFraction)
	addNumber(worst, "MonthlyRent", a.WorstCase.MonthlyRent)
	addNumber(worst, "MonthlyExpenses", a.WorstCase.MonthlyExpenses)
	addNumber(worst, "InterestRate", a.WorstCase.InterestRate)
	addNumber(worst, "MonthlyPayment", a.WorstCase.MonthlyPayment)
	addNumber(worst, "MonthlyCashFlow", a.WorstCase.MonthlyCashFlow)
	if a.WorstCase.Undefined {
		worst.CreateAttr("undefined", "true")
	} else {
		addNumber(worst, "CashOnCash", a.WorstCase.CashOnCash)
	}

	tax := root.CreateElement("Tax")
	addNumber(tax, "MortgageInterest", a.Tax.Expenses.MortgageInterest)
	addNumber(tax, "Depreciation", a.Tax.Expenses.Depreciation)
	addNumber(tax, "TotalDeductions", a.Tax.TotalDeductions)
	addNumber(tax, "FederalSavings", a.Tax.FederalSavings)
	addNumber(tax, "StateSavings", a.Tax.StateSavings)
	addNumber(tax, "LocalSavings", a.Tax.LocalSavings)
	addNumber(tax, "TotalSavings", a.Tax.TotalSavings)
	addNumber(tax, "AdjustedAnnualCashFlow", a.Tax.AdjustedAnnualCashFlow)
	if a.Tax.Undefined {
		tax.CreateAttr("undefined", "true")
	} else {
		addNumber(tax, "AdjustedCashOnCash", a.Tax.AdjustedCashOnCash)
	}

	plan := root.CreateElement("Plan")
	plan.CreateAttr("targetMet", strconv.FormatBool(a.Plan.TargetMet))
	addNumber(plan, "TargetCashOnCash", a.Plan.TargetCashOnCash)
	addNumber(plan, "TotalCost", a.Plan.TotalCost)
	for i, step := range a.Plan.Steps {
		el := plan.CreateElement("Step")
		el.CreateAttr("order", strconv.Itoa(i+1))
		el.CreateAttr("category", string(step.Action.Category))
		el.CreateElement("Title").SetText(step.Action.Title)
		addNumber(el, "Cost", step.Action.Cost)
		addNumber(el, "MarginalROI", float64(step.MarginalROI))
		addNumber(el, "CumulativeCost", step.CumulativeCost)
		addNumber(el, "ProjectedCashOnCash", step.ProjectedReturns.CashOnCash)
	}

	risk := root.CreateElement("Risk")
	risk.CreateAttr("level", string(a.Risk.Level))
	risk.CreateAttr("score", strconv.Itoa(a.Risk.Score))
	for _, f := range a.Risk.Factors {
		risk.CreateElement("Factor").SetText(f)
	}

	rec := root.CreateElement("Recommendation")
	rec.CreateAttr("verdict", string(a.Recommendation.Verdict))
	rec.SetText(a.Recommendation.Reason)

	doc.Indent(2)
	return doc.WriteToBytes()
}

func addReturns(parent *etree.Element, m models.ReturnMetrics) {
	if m.Undefined {
		parent.CreateAttr("undefined", "true")
		parent.CreateElement("Reason").SetText(m.UndefinedReason)
	} else {
		addNumber(parent, "CashOnCash", m.CashOnCash)
		addNumber(parent, "Appreciation", m.Appreciation)
		addNumber(parent, "TaxSavings", m.TaxSavings)
		addNumber(parent, "PrincipalPaydown", m.PrincipalPaydown)
		addNumber(parent, "Total", m.Total)
	}
	addNumber(parent, "MonthlyCashFlow", m.MonthlyCashFlow)
	addNumber(parent, "CashInvested", m.CashInvested)
}

// addNumber writes v with the shortest exact representation; +Inf is written as "INF"
func addNumber(parent *etree.Element, tag string, v float64) {
	text := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 1) {
		text = "INF"
	}
	parent.CreateElement(tag).SetText(text)
}
