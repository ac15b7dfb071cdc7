package alphavantage

import (
	"testing"

	"stock-watchlist/src/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverview(t *testing.T) {
	body := []byte(`{
		"Symbol": "GD",
		"AssetType": "Common Stock",
		"Name": "General Dynamics Corporation",
		"Description": "General Dynamics is an aerospace and defense company.",
		"Exchange": "NYSE",
		"Sector": "Industrials",
		"Industry": "Aerospace & Defense",
		"MarketCapitalization": "80,100,000,000"
	}`)

	o, err := ParseOverview(body)
	require.NoError(t, err)

	assert.Equal(t, "GD", o.Symbol)
	require.NotNil(t, o.Name)
	assert.Equal(t, "General Dynamics Corporation", *o.Name)
	require.NotNil(t, o.MarketCapitalization)
	assert.Equal(t, int64(80100000000), *o.MarketCapitalization, "digit-grouping commas are stripped")
}

func TestParseOverviewOptionalFieldsAbsent(t *testing.T) {
	body := []byte(`{
		"Symbol": "CRWV",
		"Name": "   ",
		"Sector": "",
		"Industry": "None",
		"Exchange": "-",
		"MarketCapitalization": "None"
	}`)

	o, err := ParseOverview(body)
	require.NoError(t, err)

	assert.Equal(t, "CRWV", o.Symbol)
	assert.Nil(t, o.Name, "whitespace-only values normalize to absent, never empty strings")
	assert.Nil(t, o.Sector)
	assert.Nil(t, o.Industry)
	assert.Nil(t, o.Exchange)
	assert.Nil(t, o.AssetType)
	assert.Nil(t, o.Description)
	assert.Nil(t, o.MarketCapitalization)
}

func TestParseOverviewMissingSymbol(t *testing.T) {
	_, err := ParseOverview([]byte(`{"Name": "Mystery Corp"}`))
	require.Error(t, err)
	assert.True(t, helpers.IsParseError(err))
}

func TestParseOverviewNotAnObject(t *testing.T) {
	_, err := ParseOverview([]byte(`[1,2,3]`))
	require.Error(t, err)
	assert.True(t, helpers.IsParseError(err))
}
