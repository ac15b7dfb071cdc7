package mockdata

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"stock-watchlist/src/models"
	"stock-watchlist/src/utils"
)

// seriesDays is how many trading sessions a mock daily series spans.
const seriesDays = 30

// -----------------------------------------------------------------------------
// Source serves statically embedded data for every watchlist ticker. It backs
// two behaviors: mock mode (no API credential, or mocks forced by config) and
// the mock-fallback policy after a failed upstream fetch. Records are
// deterministic per symbol, and dates follow the real NYSE calendar so mock
// data always looks current.
// -----------------------------------------------------------------------------

type Source struct {
	Calendar *utils.TradingCalendar
}

// -----------------------------------------------------------------------------

func NewSource(cal *utils.TradingCalendar) *Source {
	return &Source{Calendar: cal}
}

// -----------------------------------------------------------------------------

func (s *Source) Name() string {
	return "mockdata"
}

// -----------------------------------------------------------------------------

// company is the embedded profile behind a mock overview and quote.
type company struct {
	Name      string
	Sector    string
	Industry  string
	BasePrice float64
	MarketCap int64
}

var companies = map[models.Ticker]company{
	models.TickerAAPL: {"Apple Inc", "Technology", "Consumer Electronics", 189.40, 2940000000000},
	models.TickerMSFT: {"Microsoft Corporation", "Technology", "Software - Infrastructure", 415.20, 3090000000000},
	models.TickerGOOG: {"Alphabet Inc Class C", "Communication Services", "Internet Content & Information", 172.60, 2140000000000},
	models.TickerAMZN: {"Amazon.com Inc", "Consumer Cyclical", "Internet Retail", 183.75, 1910000000000},
	models.TickerNVDA: {"NVIDIA Corporation", "Technology", "Semiconductors", 131.90, 3240000000000},
	models.TickerMETA: {"Meta Platforms Inc", "Communication Services", "Internet Content & Information", 504.30, 1280000000000},
	models.TickerTSLA: {"Tesla Inc", "Consumer Cyclical", "Auto Manufacturers", 248.50, 790000000000},
	models.TickerGD:   {"General Dynamics Corporation", "Industrials", "Aerospace & Defense", 292.10, 80100000000},
	models.TickerCRWV: {"CoreWeave Inc", "Technology", "Information Technology Services", 118.20, 57400000000},
	models.TickerJPM:  {"JPMorgan Chase & Co", "Financial Services", "Banks - Diversified", 207.45, 596000000000},
	models.TickerV:    {"Visa Inc", "Financial Services", "Credit Services", 281.70, 571000000000},
	models.TickerKO:   {"The Coca-Cola Company", "Consumer Defensive", "Beverages - Non-Alcoholic", 63.15, 272000000000},
	models.TickerXOM:  {"Exxon Mobil Corporation", "Energy", "Oil & Gas Integrated", 113.80, 452000000000},
	models.TickerBA:   {"The Boeing Company", "Industrials", "Aerospace & Defense", 178.35, 110000000000},
	models.TickerDIS:  {"The Walt Disney Company", "Communication Services", "Entertainment", 96.60, 175000000000},
}

// -----------------------------------------------------------------------------

// FetchQuote returns the embedded quote for one ticker. It is derived from
// the last two points of the mock daily series, so quote and chart agree.
func (s *Source) FetchQuote(symbol models.Ticker) (*models.MQuote, error) {
	series, _ := s.FetchDailySeries(symbol)

	last := series[len(series)-1]
	prev := last
	if len(series) > 1 {
		prev = series[len(series)-2]
	}

	change := last.Close - prev.Close
	changePct := 0.0
	if prev.Close > 0 {
		changePct = change / prev.Close * 100
	}

	return &models.MQuote{
		Symbol:           symbol.String(),
		Open:             last.Open,
		High:             last.High,
		Low:              last.Low,
		Price:            last.Close,
		PreviousClose:    prev.Close,
		Change:           round2(change),
		ChangePercent:    round4(changePct),
		LatestTradingDay: last.Date,
		Volume:           last.Volume,
	}, nil
}

// -----------------------------------------------------------------------------

// FetchOverview returns the embedded company profile for one ticker.
func (s *Source) FetchOverview(symbol models.Ticker) (*models.MCompanyOverview, error) {
	c := companies[symbol]

	assetType := "Common Stock"
	exchange := "NYSE"
	marketCap := c.MarketCap

	return &models.MCompanyOverview{
		Symbol:               symbol.String(),
		AssetType:            &assetType,
		Name:                 &c.Name,
		Exchange:             &exchange,
		Sector:               &c.Sector,
		Industry:             &c.Industry,
		MarketCapitalization: &marketCap,
	}, nil
}

// -----------------------------------------------------------------------------

// FetchDailySeries generates a deterministic random walk around the ticker's
// base price over the most recent NYSE sessions.
func (s *Source) FetchDailySeries(symbol models.Ticker) (models.MDailySeries, error) {
	c := companies[symbol]
	dates := s.Calendar.RecentTradingDays(time.Now(), seriesDays)

	rng := rand.New(rand.NewSource(int64(symbolSeed(symbol))))
	series := make(models.MDailySeries, 0, len(dates))

	prevClose := c.BasePrice
	for _, date := range dates {
		// Daily move within roughly +/-2%.
		drift := (rng.Float64() - 0.5) * 0.04
		closePrice := prevClose * (1 + drift)

		open := prevClose * (1 + (rng.Float64()-0.5)*0.01)
		high := math.Max(open, closePrice) * (1 + rng.Float64()*0.01)
		low := math.Min(open, closePrice) * (1 - rng.Float64()*0.01)
		volume := int64(5_000_000 + rng.Intn(45_000_000))

		series = append(series, models.MDailySeriesPoint{
			Date:   date,
			Open:   round2(open),
			High:   round2(high),
			Low:    round2(low),
			Close:  round2(closePrice),
			Volume: &volume,
		})
		prevClose = closePrice
	}

	return series, nil
}

// -----------------------------------------------------------------------------

func symbolSeed(symbol models.Ticker) uint32 {
	h := fnv.New32a()
	h.Write([]byte(symbol))
	return h.Sum32()
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
