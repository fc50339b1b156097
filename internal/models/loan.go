package models

// Payment represents one period of an amortization schedule
type Payment struct {
	Period           int     `json:"period"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// LoanTerms represents the financing of a purchase
type LoanTerms struct {
	PurchasePrice  float64   `json:"purchase_price"`
	DownPayment    float64   `json:"down_payment"`
	ClosingCosts   float64   `json:"closing_costs"`
	CashInvested   float64   `json:"cash_invested"` // down payment + closing costs
	LoanAmount     float64   `json:"loan_amount"`
	MonthlyRate    float64   `json:"monthly_rate"`
	Periods        int       `json:"periods"`
	MonthlyPayment float64   `json:"monthly_payment"`
	Schedule       []Payment `json:"schedule"`
}

// FirstYearPrincipal returns the principal repaid over the first 12 periods
func (l LoanTerms) FirstYearPrincipal() float64 {
	var total float64
	for i, p := range l.Schedule {
		if i >= 12 {
			break
		}
		total += p.Principal
	}
	return total
}

// FirstYearInterest returns the interest paid over the first 12 periods
func (l LoanTerms) FirstYearInterest() float64 {
	var total float64
	for i, p := range l.Schedule {
		if i >= 12 {
			break
		}
		total += p.Interest
	}
	return total
}
