package alphavantage

import (
	"encoding/json"

	"stock-watchlist/src/helpers"
	"stock-watchlist/src/models"
)

// -----------------------------------------------------------------------------
// GLOBAL_QUOTE normalizer.
//
// The upstream nests the record under "Global Quote" and names every field
// "NN. name". Any required field that is absent or unparseable fails the
// whole record; only volume degrades to absent.
// -----------------------------------------------------------------------------

type rawGlobalQuote struct {
	GlobalQuote map[string]string `json:"Global Quote"`
}

// -----------------------------------------------------------------------------

// ParseGlobalQuote normalizes a GLOBAL_QUOTE response body.
func ParseGlobalQuote(body []byte) (*models.MQuote, error) {
	var raw rawGlobalQuote
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, helpers.WrapParseError(err, "quote response is not valid JSON")
	}
	if len(raw.GlobalQuote) == 0 {
		return nil, helpers.NewParseError("quote response has no \"Global Quote\" object")
	}

	fields := raw.GlobalQuote

	symbol, err := requiredString(fields, "01. symbol")
	if err != nil {
		return nil, err
	}
	open, err := requiredFloat(fields, "02. open")
	if err != nil {
		return nil, err
	}
	high, err := requiredFloat(fields, "03. high")
	if err != nil {
		return nil, err
	}
	low, err := requiredFloat(fields, "04. low")
	if err != nil {
		return nil, err
	}
	price, err := requiredFloat(fields, "05. price")
	if err != nil {
		return nil, err
	}
	latestDay, err := requiredDate(fields, "07. latest trading day")
	if err != nil {
		return nil, err
	}
	prevClose, err := requiredFloat(fields, "08. previous close")
	if err != nil {
		return nil, err
	}
	change, err := requiredFloat(fields, "09. change")
	if err != nil {
		return nil, err
	}
	changePct, err := requiredPercent(fields, "10. change percent")
	if err != nil {
		return nil, err
	}

	return &models.MQuote{
		Symbol:           symbol,
		Open:             open,
		High:             high,
		Low:              low,
		Price:            price,
		PreviousClose:    prevClose,
		Change:           change,
		ChangePercent:    changePct,
		LatestTradingDay: latestDay,
		Volume:           optionalInt(fields, "06. volume"),
	}, nil
}
