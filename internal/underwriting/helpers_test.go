package underwriting

import "github.com/Dan9191/underwriting-service/internal/models"

func houstonProperty() models.Property {
	return models.Property{
		ID:            "houston-1",
		Address:       "2456 Oak Ridge Drive, Houston, TX 77056",
		PurchasePrice: 325000,
		SquareFootage: 2150,
		Bedrooms:      3,
		Bathrooms:     2.5,
		YearBuilt:     2015,
		PropertyType:  "Single Family",
		EstimatedRent: 2200,
		DaysOnMarket:  45,
	}
}

// cashFlowingProperty has positive cash flow under noUtilities()
func cashFlowingProperty() models.Property {
	return models.Property{
		ID:            "duplex-7",
		Address:       "18 Mill Street, Macon, GA 31201",
		PurchasePrice: 150000,
		SquareFootage: 1600,
		YearBuilt:     1998,
		PropertyType:  "Duplex",
		EstimatedRent: 2000,
	}
}

func noUtilities() models.FinancialAssumptions {
	a := DefaultAssumptions()
	a.Utilities = models.UtilityCosts{}
	return a
}
