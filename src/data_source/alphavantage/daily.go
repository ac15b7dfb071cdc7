package alphavantage

import (
	"encoding/json"
	"sort"

	"stock-watchlist/src/helpers"
	"stock-watchlist/src/models"
)

// -----------------------------------------------------------------------------
// TIME_SERIES_DAILY normalizer.
//
// Both the standard and the adjusted endpoint nest per-day objects under
// "Time Series (Daily)", keyed by date, with numbered field names. A day with
// an unparseable close is dropped silently; an unparseable open, high or low
// fails the whole series. The result is sorted ascending by date (ISO dates
// sort correctly as strings).
// -----------------------------------------------------------------------------

type rawDailySeries struct {
	Series map[string]map[string]string `json:"Time Series (Daily)"`
}

// -----------------------------------------------------------------------------

// ParseDailySeries normalizes a TIME_SERIES_DAILY(_ADJUSTED) response body.
func ParseDailySeries(body []byte) (models.MDailySeries, error) {
	var raw rawDailySeries
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, helpers.WrapParseError(err, "daily series response is not valid JSON")
	}
	if len(raw.Series) == 0 {
		return nil, helpers.NewParseError("daily series response has no \"Time Series (Daily)\" object")
	}

	series := make(models.MDailySeries, 0, len(raw.Series))
	for date, day := range raw.Series {
		closePrice, err := requiredFloat(day, "4. close")
		if err != nil {
			// Days with a bad close are dropped, not fatal.
			continue
		}
		open, err := requiredFloat(day, "1. open")
		if err != nil {
			return nil, err
		}
		high, err := requiredFloat(day, "2. high")
		if err != nil {
			return nil, err
		}
		low, err := requiredFloat(day, "3. low")
		if err != nil {
			return nil, err
		}

		series = append(series, models.MDailySeriesPoint{
			Date:  date,
			Open:  open,
			High:  high,
			Low:   low,
			Close: closePrice,
			// The adjusted endpoint shifts volume to "6. volume".
			Volume: optionalInt(day, "5. volume", "6. volume"),
		})
	}

	if len(series) == 0 {
		return nil, helpers.NewParseError("daily series response has no usable days")
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	return series, nil
}
