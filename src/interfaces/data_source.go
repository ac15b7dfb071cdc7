package interfaces

import (
	"stock-watchlist/src/models"
)

// -----------------------------------------------------------------------------
// IDataSource interface for fetching stock data from an external provider.
//
// Each method issues one upstream request (plus the documented premium-tier
// fallback for the daily series) and returns a fully normalized record.
// Failures are typed: helpers.UpstreamError for transport/API failures,
// helpers.ParseError for malformed response shapes.
// -----------------------------------------------------------------------------

type IDataSource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// FetchQuote retrieves the current quote for one ticker.
	FetchQuote(symbol models.Ticker) (*models.MQuote, error)

	// -----------------------------------------------------------------------------

	// FetchOverview retrieves company fundamentals for one ticker.
	FetchOverview(symbol models.Ticker) (*models.MCompanyOverview, error)

	// -----------------------------------------------------------------------------

	// FetchDailySeries retrieves the daily price history for one ticker,
	// sorted ascending by date.
	FetchDailySeries(symbol models.Ticker) (models.MDailySeries, error)
}
