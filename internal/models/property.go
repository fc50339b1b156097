package models

// Property represents a sourced rental property. It is read-only for the underwriting core.
type Property struct {
	ID            string  `json:"id" yaml:"id"`
	Address       string  `json:"address" yaml:"address"`
	PurchasePrice float64 `json:"purchase_price" yaml:"purchase_price"`
	SquareFootage int     `json:"square_footage" yaml:"square_footage"`
	Bedrooms      int     `json:"bedrooms" yaml:"bedrooms"`
	Bathrooms     float64 `json:"bathrooms" yaml:"bathrooms"`
	YearBuilt     int     `json:"year_built" yaml:"year_built"`
	PropertyType  string  `json:"property_type" yaml:"property_type"`
	EstimatedRent float64 `json:"estimated_rent" yaml:"estimated_rent"` // monthly market rent
	DaysOnMarket  int     `json:"days_on_market" yaml:"days_on_market"`
	ListingURL    string  `json:"listing_url,omitempty" yaml:"listing_url"`
}
