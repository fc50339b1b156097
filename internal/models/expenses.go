package models

// OperatingExpenseBreakdown represents monthly operating costs, excluding debt service
type OperatingExpenseBreakdown struct {
	PropertyTax float64      `json:"property_tax"`
	Insurance   float64      `json:"insurance"`
	Maintenance float64      `json:"maintenance"`
	Management  float64      `json:"management"`
	VacancyLoss float64      `json:"vacancy_loss"`
	Utilities   UtilityCosts `json:"utilities"`
	Adjustments float64      `json:"adjustments"` // recurring deltas from optimization actions
}

// Total returns the sum of all monthly line items
func (e OperatingExpenseBreakdown) Total() float64 {
	return e.PropertyTax + e.Insurance + e.Maintenance + e.Management + e.VacancyLoss +
		e.Utilities.Total() + e.Adjustments
}
