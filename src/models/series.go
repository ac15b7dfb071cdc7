package models

// -----------------------------------------------------------------------------
// MDailySeriesPoint is one trading day of an upstream TIME_SERIES_DAILY
// response. A series is unique by date and sorted ascending by date before it
// leaves the data layer; descending display order is a presentation concern.
// -----------------------------------------------------------------------------

type MDailySeriesPoint struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume *int64  `json:"volume,omitempty"`
}

// MDailySeries is an ascending-by-date sequence of daily points for one ticker.
type MDailySeries []MDailySeriesPoint
