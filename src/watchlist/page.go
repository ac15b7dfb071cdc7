package watchlist

import (
	"sync"

	"stock-watchlist/src/models"
)

// -----------------------------------------------------------------------------
// Page assembly: the three record types for one ticker are fetched
// concurrently and settle independently. A failed section reports its error
// inline and never blocks or fails the others.
// -----------------------------------------------------------------------------

// GetPage fetches quote, overview and daily series for one ticker.
func (s *Service) GetPage(symbol models.Ticker) *models.MTickerPage {
	page := &models.MTickerPage{Symbol: symbol}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		page.Quote = settle(s.GetQuote(symbol))
	}()
	go func() {
		defer wg.Done()
		page.Overview = settle(s.GetOverview(symbol))
	}()
	go func() {
		defer wg.Done()
		page.Series = settle(s.GetDailySeries(symbol))
	}()

	wg.Wait()

	if !page.Quote.OK() || !page.Overview.OK() || !page.Series.OK() {
		s.Logger.Info("Partial page for %s: quote=%v overview=%v series=%v",
			symbol, page.Quote.OK(), page.Overview.OK(), page.Series.OK())
	}

	return page
}

// -----------------------------------------------------------------------------

// GetWatchlist fetches pages for every watchlist ticker with bounded
// concurrency. Pages settle independently; the slice keeps display order.
func (s *Service) GetWatchlist() []*models.MTickerPage {
	tickers := models.AllTickers()
	pages := make([]*models.MTickerPage, len(tickers))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.Config.Network.ConcurrentRequests)

	for i, t := range tickers {
		wg.Add(1)
		go func(i int, t models.Ticker) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			pages[i] = s.GetPage(t)
		}(i, t)
	}

	wg.Wait()
	return pages
}

// -----------------------------------------------------------------------------

// settle converts a getter outcome into a section: data on success, the error
// message inline on failure.
func settle[T any](result *models.CachedResult[T], err error) models.MSection[T] {
	if err != nil {
		return models.MSection[T]{Error: err.Error()}
	}
	return models.MSection[T]{Result: result}
}
