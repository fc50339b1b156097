package report

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
)

// USD formats a dollar amount with currency symbol and grouping, rounded to the cent
func USD(amount float64) string {
	return money.New(int64(math.Round(amount*100)), money.USD).Display()
}

// Percent formats a ratio (0.0712) as a percentage (7.12%)
func Percent(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}

// ROI formats a marginal ROI, spelling out unbounded values
func ROI(r float64) string {
	if math.IsInf(r, 1) {
		return "free"
	}
	return Percent(r)
}
