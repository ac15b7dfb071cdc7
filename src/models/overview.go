package models

// -----------------------------------------------------------------------------
// MCompanyOverview is the normalized shape of an upstream OVERVIEW response.
// Every field except Symbol is optional: absent values are nil pointers,
// never empty strings.
// -----------------------------------------------------------------------------

type MCompanyOverview struct {
	Symbol               string  `json:"symbol"`
	AssetType            *string `json:"asset_type,omitempty"`
	Name                 *string `json:"name,omitempty"`
	Description          *string `json:"description,omitempty"`
	Exchange             *string `json:"exchange,omitempty"`
	Sector               *string `json:"sector,omitempty"`
	Industry             *string `json:"industry,omitempty"`
	MarketCapitalization *int64  `json:"market_capitalization,omitempty"`
}
