package underwriting

import "github.com/Dan9191/underwriting-service/internal/models"

// Summarize aggregates the returns of several analyses. Analyses whose returns
// are undefined are counted but excluded from averages and totals.
func Summarize(analyses []models.Analysis) models.PortfolioSummary {
	var s models.PortfolioSummary
	for _, a := range analyses {
		if a.Returns.Undefined {
			s.Undefined++
			continue
		}
		s.Properties++
		s.TotalCashInvested += a.Returns.CashInvested
		s.TotalAnnualCashFlow += a.Returns.AnnualCashFlow
		s.AvgCashOnCash += a.Returns.CashOnCash
		s.AvgAppreciation += a.Returns.Appreciation
		s.AvgTaxSavings += a.Returns.TaxSavings
		s.AvgPrincipalPaydown += a.Returns.PrincipalPaydown
		s.AvgTotal += a.Returns.Total
	}
	if s.Properties == 0 {
		return s
	}

	n := float64(s.Properties)
	s.AvgCashOnCash /= n
	s.AvgAppreciation /= n
	s.AvgTaxSavings /= n
	s.AvgPrincipalPaydown /= n
	s.AvgTotal /= n
	if s.TotalCashInvested > 0 {
		s.PortfolioCashOnCash = s.TotalAnnualCashFlow / s.TotalCashInvested
	}
	return s
}
