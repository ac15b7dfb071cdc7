package mockdata

import (
	"testing"

	"stock-watchlist/src/models"
	"stock-watchlist/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockDataCoversEveryTicker(t *testing.T) {
	s := NewSource(utils.NewTradingCalendar())

	for _, tk := range models.AllTickers() {
		q, err := s.FetchQuote(tk)
		require.NoError(t, err, tk)
		assert.Equal(t, tk.String(), q.Symbol)
		assert.Greater(t, q.Price, 0.0, tk)
		assert.NotEmpty(t, q.LatestTradingDay)

		o, err := s.FetchOverview(tk)
		require.NoError(t, err, tk)
		require.NotNil(t, o.Name, tk)
		assert.NotEmpty(t, *o.Name)

		series, err := s.FetchDailySeries(tk)
		require.NoError(t, err, tk)
		assert.Len(t, series, seriesDays)
	}
}

func TestMockSeriesIsDeterministicAndSorted(t *testing.T) {
	s := NewSource(utils.NewTradingCalendar())

	a, err := s.FetchDailySeries(models.TickerTSLA)
	require.NoError(t, err)
	b, err := s.FetchDailySeries(models.TickerTSLA)
	require.NoError(t, err)
	assert.Equal(t, a, b, "mock series must be deterministic per symbol")

	for i := 1; i < len(a); i++ {
		assert.Less(t, a[i-1].Date, a[i].Date, "series must ascend by date")
	}

	other, err := s.FetchDailySeries(models.TickerKO)
	require.NoError(t, err)
	assert.NotEqual(t, a[len(a)-1].Close, other[len(other)-1].Close, "different symbols walk differently")
}

func TestMockQuoteAgreesWithSeries(t *testing.T) {
	s := NewSource(utils.NewTradingCalendar())

	q, err := s.FetchQuote(models.TickerGD)
	require.NoError(t, err)
	series, err := s.FetchDailySeries(models.TickerGD)
	require.NoError(t, err)

	last := series[len(series)-1]
	prev := series[len(series)-2]
	assert.Equal(t, last.Close, q.Price)
	assert.Equal(t, prev.Close, q.PreviousClose)
	assert.Equal(t, last.Date, q.LatestTradingDay)
}
