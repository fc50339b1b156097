package models

// StressAssumptions describes the adverse market used for the worst case
type StressAssumptions struct {
	VacancyFraction float64 `json:"vacancy_fraction" yaml:"vacancy_fraction"` // replaces the normal vacancy
	RentDecrease    float64 `json:"rent_decrease" yaml:"rent_decrease"`
	ExpenseIncrease float64 `json:"expense_increase" yaml:"expense_increase"`
	RateIncrease    float64 `json:"rate_increase" yaml:"rate_increase"` // added to the annual interest rate
}

// WorstCase represents cash flow under stressed rent, expenses, vacancy and rate
type WorstCase struct {
	Stress          StressAssumptions `json:"stress"`
	MonthlyRent     float64           `json:"monthly_rent"`
	MonthlyExpenses float64           `json:"monthly_expenses"`
	InterestRate    float64           `json:"interest_rate"`
	MonthlyPayment  float64           `json:"monthly_payment"`
	MonthlyCashFlow float64           `json:"monthly_cash_flow"`
	AnnualCashFlow  float64           `json:"annual_cash_flow"`
	CashOnCash      float64           `json:"cash_on_cash"`
	Undefined       bool              `json:"undefined"`
}
