package models

// Package is a named product tier mapped to a Stripe price id.
type Package struct {
	Name    string `json:"name"`
	PriceID string `json:"price_id"`
}

// Packages is the compiled-in catalog of subscription tiers.
var Packages = map[string]string{
	"basic":   "price_1S9xxxBasicID",
	"premium": "price_1S9xxxPremiumID",
}

type PackagesResponse struct {
	Packages []Package `json:"packages"`
}
