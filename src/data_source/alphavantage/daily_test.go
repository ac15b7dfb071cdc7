package alphavantage

import (
	"encoding/json"
	"fmt"
	"testing"

	"stock-watchlist/src/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(open, high, low, closePrice, volume string) map[string]string {
	return map[string]string{
		"1. open":   open,
		"2. high":   high,
		"3. low":    low,
		"4. close":  closePrice,
		"5. volume": volume,
	}
}

func dailyBody(t *testing.T, days map[string]map[string]string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{"Time Series (Daily)": days})
	require.NoError(t, err)
	return body
}

// -----------------------------------------------------------------------------

func TestParseDailySeriesSortedAscending(t *testing.T) {
	days := map[string]map[string]string{
		"2026-08-28": day("245.00", "251.30", "243.10", "248.50", "93033772"),
		"2026-08-26": day("240.00", "243.00", "238.00", "241.90", "78000000"),
		"2026-08-27": day("242.00", "246.00", "241.00", "244.10", "81000000"),
	}

	series, err := ParseDailySeries(dailyBody(t, days))
	require.NoError(t, err)
	require.Len(t, series, 3)

	assert.Equal(t, "2026-08-26", series[0].Date)
	assert.Equal(t, "2026-08-27", series[1].Date)
	assert.Equal(t, "2026-08-28", series[2].Date)
	assert.Equal(t, 248.50, series[2].Close)
	require.NotNil(t, series[2].Volume)
	assert.Equal(t, int64(93033772), *series[2].Volume)
}

func TestParseDailySeriesDropsDayWithBadClose(t *testing.T) {
	days := make(map[string]map[string]string)
	for i := 1; i <= 10; i++ {
		days[fmt.Sprintf("2026-08-%02d", i)] = day("100", "110", "90", "105", "1000")
	}
	days["2026-08-05"]["4. close"] = "n/a"

	series, err := ParseDailySeries(dailyBody(t, days))
	require.NoError(t, err)
	assert.Len(t, series, 9, "a day with an unparseable close is dropped silently")

	for _, p := range series {
		assert.NotEqual(t, "2026-08-05", p.Date)
	}
	// Still sorted after the drop.
	for i := 1; i < len(series); i++ {
		assert.Less(t, series[i-1].Date, series[i].Date)
	}
}

func TestParseDailySeriesBadOpenFailsSeries(t *testing.T) {
	days := map[string]map[string]string{
		"2026-08-27": day("242.00", "246.00", "241.00", "244.10", "81000000"),
		"2026-08-28": day("oops", "251.30", "243.10", "248.50", "93033772"),
	}

	_, err := ParseDailySeries(dailyBody(t, days))
	require.Error(t, err)
	assert.True(t, helpers.IsParseError(err))
}

func TestParseDailySeriesMissingVolumeIsAbsent(t *testing.T) {
	d := day("242.00", "246.00", "241.00", "244.10", "")
	delete(d, "5. volume")
	series, err := ParseDailySeries(dailyBody(t, map[string]map[string]string{"2026-08-27": d}))
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Nil(t, series[0].Volume)
}

func TestParseDailySeriesAdjustedVolumeKey(t *testing.T) {
	// The adjusted endpoint shifts volume to "6. volume".
	d := map[string]string{
		"1. open":           "242.00",
		"2. high":           "246.00",
		"3. low":            "241.00",
		"4. close":          "244.10",
		"5. adjusted close": "244.10",
		"6. volume":         "81000000",
	}
	series, err := ParseDailySeries(dailyBody(t, map[string]map[string]string{"2026-08-27": d}))
	require.NoError(t, err)
	require.NotNil(t, series[0].Volume)
	assert.Equal(t, int64(81000000), *series[0].Volume)
}

func TestParseDailySeriesEmpty(t *testing.T) {
	_, err := ParseDailySeries([]byte(`{}`))
	require.Error(t, err)
	assert.True(t, helpers.IsParseError(err))

	_, err = ParseDailySeries(dailyBody(t, map[string]map[string]string{}))
	require.Error(t, err)
	assert.True(t, helpers.IsParseError(err))
}

func TestParseDailySeriesAllDaysDropped(t *testing.T) {
	days := map[string]map[string]string{
		"2026-08-27": day("242.00", "246.00", "241.00", "bogus", "81000000"),
	}
	_, err := ParseDailySeries(dailyBody(t, days))
	require.Error(t, err)
	assert.True(t, helpers.IsParseError(err))
}
