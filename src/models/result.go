package models

import "time"

// -----------------------------------------------------------------------------
// CachedResult annotates a fetched value with the instant it was written to
// the cache (or fetched, on a cache miss).
// -----------------------------------------------------------------------------

type CachedResult[T any] struct {
	Data     T         `json:"data"`
	CachedAt time.Time `json:"cached_at"`
	FromMock bool      `json:"from_mock,omitempty"`
}

// -----------------------------------------------------------------------------
// MSection is one independently fetched section of a ticker page. A failure in
// one section never fails the page: Error carries the inline message instead.
// -----------------------------------------------------------------------------

type MSection[T any] struct {
	Result *CachedResult[T] `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// OK reports whether the section holds data.
func (s MSection[T]) OK() bool {
	return s.Result != nil
}

// -----------------------------------------------------------------------------
// MTickerPage collects the three record types for one ticker. Sections settle
// independently; partial results are valid.
// -----------------------------------------------------------------------------

type MTickerPage struct {
	Symbol   Ticker                     `json:"symbol"`
	Quote    MSection[MQuote]           `json:"quote"`
	Overview MSection[MCompanyOverview] `json:"overview"`
	Series   MSection[MDailySeries]     `json:"daily_series"`
}
