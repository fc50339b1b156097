package underwriting

import (
	"math"

	"github.com/Dan9191/underwriting-service/internal/models"
	"github.com/shopspring/decimal"
)

// ComputeLoan derives the down payment, loan amount, fixed monthly payment and the
// full amortization schedule for a purchase.
func ComputeLoan(purchasePrice float64, a models.FinancialAssumptions) (models.LoanTerms, error) {
	if purchasePrice <= 0 {
		return models.LoanTerms{}, invalid("purchase price", purchasePrice, "must be positive")
	}
	if err := ValidateAssumptions(a); err != nil {
		return models.LoanTerms{}, err
	}

	downPayment := purchasePrice * a.DownPaymentFraction
	closingCosts := purchasePrice * a.ClosingCostFraction
	loanAmount := purchasePrice - downPayment
	monthlyRate := a.InterestRate / 12
	periods := a.LoanTermYears * 12
	payment := MonthlyPayment(loanAmount, monthlyRate, periods)

	return models.LoanTerms{
		PurchasePrice:  purchasePrice,
		DownPayment:    downPayment,
		ClosingCosts:   closingCosts,
		CashInvested:   downPayment + closingCosts,
		LoanAmount:     loanAmount,
		MonthlyRate:    monthlyRate,
		Periods:        periods,
		MonthlyPayment: payment,
		Schedule:       Amortize(loanAmount, monthlyRate, periods, payment),
	}, nil
}

// MonthlyPayment returns the fixed annuity payment for a loan.
// A zero rate degrades to straight-line repayment.
func MonthlyPayment(principal, monthlyRate float64, periods int) float64 {
	if periods <= 0 || principal <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return principal / float64(periods)
	}
	growth := math.Pow(1+monthlyRate, float64(periods))
	return principal * monthlyRate * growth / (growth - 1)
}

// Amortize splits each payment into interest and principal, in whole cents.
// The last period absorbs any rounding drift so the final balance is exactly zero.
// Every period repays at least one cent; loans so small that the rounded payment
// does not cover the interest are paid off early and yield a shorter schedule.
func Amortize(principal, monthlyRate float64, periods int, payment float64) []models.Payment {
	if periods <= 0 || principal <= 0 {
		return nil
	}

	balance := decimal.NewFromFloat(principal).Round(2)
	rate := decimal.NewFromFloat(monthlyRate)
	pay := decimal.NewFromFloat(payment).Round(2)
	schedule := make([]models.Payment, 0, periods)

	for period := 1; period <= periods && balance.IsPositive(); period++ {
		interest := balance.Mul(rate).Round(2)
		principalPart := decimal.Max(pay.Sub(interest), minPrincipal)
		if period == periods || principalPart.GreaterThan(balance) {
			principalPart = balance
		}
		balance = balance.Sub(principalPart)

		schedule = append(schedule, models.Payment{
			Period:           period,
			Principal:        principalPart.InexactFloat64(),
			Interest:         interest.InexactFloat64(),
			RemainingBalance: balance.InexactFloat64(),
		})
	}
	return schedule
}

var minPrincipal = decimal.New(1, -2)
