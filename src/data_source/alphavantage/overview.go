package alphavantage

import (
	"encoding/json"

	"stock-watchlist/src/helpers"
	"stock-watchlist/src/models"
)

// -----------------------------------------------------------------------------
// OVERVIEW normalizer.
//
// The response is a flat object of string-valued fields. Only Symbol is
// required; every other field is optional and absence is a nil pointer.
// -----------------------------------------------------------------------------

// ParseOverview normalizes an OVERVIEW response body.
func ParseOverview(body []byte) (*models.MCompanyOverview, error) {
	var fields map[string]string
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, helpers.WrapParseError(err, "overview response is not a flat string object")
	}

	symbol, err := requiredString(fields, "Symbol")
	if err != nil {
		return nil, err
	}

	return &models.MCompanyOverview{
		Symbol:               symbol,
		AssetType:            optionalString(fields, "AssetType"),
		Name:                 optionalString(fields, "Name"),
		Description:          optionalString(fields, "Description"),
		Exchange:             optionalString(fields, "Exchange"),
		Sector:               optionalString(fields, "Sector"),
		Industry:             optionalString(fields, "Industry"),
		MarketCapitalization: optionalInt(fields, "MarketCapitalization"),
	}, nil
}
