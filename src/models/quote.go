package models

// -----------------------------------------------------------------------------
// MQuote is the normalized shape of an upstream GLOBAL_QUOTE response.
// All numeric fields are required except Volume, which the upstream omits for
// some instruments.
// -----------------------------------------------------------------------------

type MQuote struct {
	Symbol           string  `json:"symbol"`
	Open             float64 `json:"open"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	Price            float64 `json:"price"`
	PreviousClose    float64 `json:"previous_close"`
	Change           float64 `json:"change"`
	ChangePercent    float64 `json:"change_percent"`
	LatestTradingDay string  `json:"latest_trading_day"` // YYYY-MM-DD
	Volume           *int64  `json:"volume,omitempty"`
}
