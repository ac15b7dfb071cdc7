package server

import (
	"net/http"
	"time"

	"stock-watchlist/src/models"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// Route Handlers
//
// Handlers return partial data with inline section errors rather than failing
// a whole page; the only hard failure is an unknown symbol (404).
// -----------------------------------------------------------------------------

func (s *WebServer) getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"name":      s.Config.Name,
		"mock_mode": s.Config.MockMode(),
	})
}

// -----------------------------------------------------------------------------

func (s *WebServer) getConfig(c *gin.Context) {
	// Safe subset only; the credential never leaves the process.
	c.JSON(http.StatusOK, gin.H{
		"name":          s.Config.Name,
		"mock_mode":     s.Config.MockMode(),
		"cache_enabled": s.Config.Cache.Enabled,
		"cache_backend": s.Config.Cache.Backend,
		"cache_ttl_h":   s.Config.Cache.TTLHours,
		"output_size":   s.Config.Upstream.OutputSize,
	})
}

// -----------------------------------------------------------------------------

func (s *WebServer) getMarketStatus(c *gin.Context) {
	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"open":                 s.Calendar.IsOpenNow(now),
		"previous_trading_day": s.Calendar.PreviousTradingDay(now),
	})
}

// -----------------------------------------------------------------------------

func (s *WebServer) getTickers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tickers": models.AllTickers()})
}

// -----------------------------------------------------------------------------

func (s *WebServer) getWatchlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"watchlist": s.Service.GetWatchlist()})
}

// -----------------------------------------------------------------------------

func (s *WebServer) getTickerPage(c *gin.Context) {
	symbol, ok := s.symbolParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Service.GetPage(symbol))
}

// -----------------------------------------------------------------------------

func (s *WebServer) getQuote(c *gin.Context) {
	symbol, ok := s.symbolParam(c)
	if !ok {
		return
	}

	result, err := s.Service.GetQuote(symbol)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// -----------------------------------------------------------------------------

func (s *WebServer) getOverview(c *gin.Context) {
	symbol, ok := s.symbolParam(c)
	if !ok {
		return
	}

	result, err := s.Service.GetOverview(symbol)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// -----------------------------------------------------------------------------

func (s *WebServer) getDailySeries(c *gin.Context) {
	symbol, ok := s.symbolParam(c)
	if !ok {
		return
	}

	result, err := s.Service.GetDailySeries(symbol)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	// The data layer hands out ascending series; descending display order is
	// a presentation choice.
	if c.Query("order") == "desc" {
		reversed := make(models.MDailySeries, len(result.Data))
		for i, p := range result.Data {
			reversed[len(reversed)-1-i] = p
		}
		result = &models.CachedResult[models.MDailySeries]{
			Data:     reversed,
			CachedAt: result.CachedAt,
			FromMock: result.FromMock,
		}
	}

	c.JSON(http.StatusOK, result)
}

// -----------------------------------------------------------------------------

// symbolParam validates the :symbol route parameter against the watchlist.
func (s *WebServer) symbolParam(c *gin.Context) (models.Ticker, bool) {
	symbol, err := models.ParseTicker(c.Param("symbol"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return "", false
	}
	return symbol, true
}
