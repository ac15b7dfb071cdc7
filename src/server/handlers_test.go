package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stock-watchlist/src/cache"
	"stock-watchlist/src/config"
	"stock-watchlist/src/data_source/mockdata"
	"stock-watchlist/src/logger"
	"stock-watchlist/src/models"
	"stock-watchlist/src/utils"
	"stock-watchlist/src/watchlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer builds a server in forced mock mode, so no handler ever
// touches the network.
func newTestServer(t *testing.T) *WebServer {
	t.Helper()

	cfg := &config.Config{MConfig: &models.MConfig{
		Name:     "test",
		Host:     "127.0.0.1",
		Port:     9000,
		Upstream: models.MUpstreamConfig{BaseURL: "https://example.test", OutputSize: "compact"},
		Cache:    models.MCacheConfig{Enabled: false, TTLHours: 24},
		Network:  models.MNetworkConfig{RequestTimeout: 5, ConcurrentRequests: 3},
		Mocks:    models.MMocksConfig{Force: true},
	}}

	log := logger.NewLogger("test", logger.LevelError)
	cal := utils.NewTradingCalendar()
	mock := mockdata.NewSource(cal)
	svc := watchlist.NewService(cfg, cache.NewNoopCache(), mock, mock, log)

	return NewWebServer(cfg, svc, cal, log)
}

func doGet(t *testing.T, s *WebServer, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)
	return rec
}

// -----------------------------------------------------------------------------

func TestHealthEndpoint(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["mock_mode"])
}

func TestConfigEndpointHidesCredential(t *testing.T) {
	s := newTestServer(t)
	s.Config.Upstream.APIKey = "super-secret"

	rec := doGet(t, s, "/api/config")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "super-secret")
}

func TestTickersEndpoint(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/api/tickers")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Tickers []string `json:"tickers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Tickers, 15)
	assert.Contains(t, body.Tickers, "TSLA")
}

func TestUnknownSymbolIs404(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{
		"/api/tickers/DOGE",
		"/api/tickers/DOGE/quote",
		"/api/tickers/DOGE/overview",
		"/api/tickers/DOGE/daily",
	} {
		rec := doGet(t, s, path)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestQuoteEndpoint(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/api/tickers/TSLA/quote")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data     models.MQuote `json:"data"`
		FromMock bool          `json:"from_mock"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "TSLA", body.Data.Symbol)
	assert.True(t, body.FromMock)
	assert.Greater(t, body.Data.Price, 0.0)
}

func TestTickerPageEndpoint(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/api/tickers/GD")
	require.Equal(t, http.StatusOK, rec.Code)

	var page models.MTickerPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.True(t, page.Quote.OK())
	assert.True(t, page.Overview.OK())
	assert.True(t, page.Series.OK())
}

func TestDailySeriesDescOrder(t *testing.T) {
	s := newTestServer(t)

	recAsc := doGet(t, s, "/api/tickers/AAPL/daily")
	recDesc := doGet(t, s, "/api/tickers/AAPL/daily?order=desc")
	require.Equal(t, http.StatusOK, recAsc.Code)
	require.Equal(t, http.StatusOK, recDesc.Code)

	var asc, desc struct {
		Data models.MDailySeries `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recAsc.Body.Bytes(), &asc))
	require.NoError(t, json.Unmarshal(recDesc.Body.Bytes(), &desc))

	require.NotEmpty(t, asc.Data)
	require.Equal(t, len(asc.Data), len(desc.Data))
	assert.Equal(t, asc.Data[0], desc.Data[len(desc.Data)-1])
	for i := 1; i < len(desc.Data); i++ {
		assert.Greater(t, desc.Data[i-1].Date, desc.Data[i].Date)
	}
}

func TestWatchlistEndpoint(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/api/watchlist")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Watchlist []models.MTickerPage `json:"watchlist"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Watchlist, 15)
	for _, page := range body.Watchlist {
		assert.True(t, page.Quote.OK(), page.Symbol)
	}
}

func TestMarketStatusEndpoint(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/api/market-status")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "open")
	assert.Contains(t, body, "previous_trading_day")
}
