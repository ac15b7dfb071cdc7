package alphavantage

import (
	"encoding/json"
	"strings"

	"stock-watchlist/src/helpers"
	"stock-watchlist/src/interfaces"
	"stock-watchlist/src/logger"
	"stock-watchlist/src/models"
)

// Upstream function names.
const (
	FuncGlobalQuote         = "GLOBAL_QUOTE"
	FuncOverview            = "OVERVIEW"
	FuncDailySeries         = "TIME_SERIES_DAILY"
	FuncDailySeriesAdjusted = "TIME_SERIES_DAILY_ADJUSTED"
)

// premiumEndpointMarker is the substring the upstream uses to report that an
// endpoint needs a higher subscription tier.
const premiumEndpointMarker = "premium endpoint"

// -----------------------------------------------------------------------------

type Source struct {
	Config  *models.MConfig
	Network interfaces.INetworkManager
	Logger  *logger.Logger
}

// -----------------------------------------------------------------------------

func NewSource(cfg *models.MConfig, netMgr interfaces.INetworkManager, log *logger.Logger) *Source {
	return &Source{
		Config:  cfg,
		Network: netMgr,
		Logger:  log,
	}
}

// -----------------------------------------------------------------------------

func (s *Source) Name() string {
	return "alphavantage"
}

// -----------------------------------------------------------------------------

// sentinelEnvelope holds the well-known fields the upstream uses to report
// soft failures inside an HTTP 200 response.
type sentinelEnvelope struct {
	Note         string `json:"Note"`
	Information  string `json:"Information"`
	ErrorMessage string `json:"Error Message"`
}

func (e sentinelEnvelope) message() string {
	if e.ErrorMessage != "" {
		return e.ErrorMessage
	}
	if e.Note != "" {
		return e.Note
	}
	return e.Information
}

// -----------------------------------------------------------------------------

// fetch issues one GET against the upstream API and returns the raw body.
// The sentinel check runs on every endpoint before any success decode.
func (s *Source) fetch(params map[string]string) ([]byte, error) {
	full := make(map[string]string, len(params)+1)
	for k, v := range params {
		full[k] = v
	}
	full["apikey"] = s.Config.Upstream.APIKey

	body, status, err := s.Network.Get(s.Config.Upstream.BaseURL, full)
	if err != nil {
		return nil, helpers.WrapUpstreamError(err, "request to %s failed", params["function"])
	}
	if status < 200 || status >= 300 {
		return nil, helpers.NewUpstreamError("upstream returned status %d for %s", status, params["function"])
	}

	var env sentinelEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, helpers.WrapParseError(err, "response for %s is not valid JSON", params["function"])
	}
	if msg := env.message(); msg != "" {
		return nil, helpers.NewUpstreamError("%s", msg)
	}

	return body, nil
}

// -----------------------------------------------------------------------------

// FetchQuote retrieves and normalizes the current quote for one ticker.
func (s *Source) FetchQuote(symbol models.Ticker) (*models.MQuote, error) {
	body, err := s.fetch(map[string]string{
		"function": FuncGlobalQuote,
		"symbol":   symbol.String(),
	})
	if err != nil {
		return nil, err
	}
	return ParseGlobalQuote(body)
}

// -----------------------------------------------------------------------------

// FetchOverview retrieves and normalizes company fundamentals for one ticker.
func (s *Source) FetchOverview(symbol models.Ticker) (*models.MCompanyOverview, error) {
	body, err := s.fetch(map[string]string{
		"function": FuncOverview,
		"symbol":   symbol.String(),
	})
	if err != nil {
		return nil, err
	}
	return ParseOverview(body)
}

// -----------------------------------------------------------------------------

// FetchDailySeries retrieves the daily price history for one ticker. The
// standard endpoint is tried first; when the upstream reports it as a premium
// endpoint, the adjusted variant is tried once before giving up.
func (s *Source) FetchDailySeries(symbol models.Ticker) (models.MDailySeries, error) {
	body, err := s.fetch(map[string]string{
		"function":   FuncDailySeries,
		"symbol":     symbol.String(),
		"outputsize": s.Config.Upstream.OutputSize,
	})
	if err != nil {
		if !isPremiumEndpointError(err) {
			return nil, err
		}
		s.Logger.Warning("Daily series for %s needs a premium endpoint, retrying adjusted variant", symbol)
		body, err = s.fetch(map[string]string{
			"function":   FuncDailySeriesAdjusted,
			"symbol":     symbol.String(),
			"outputsize": s.Config.Upstream.OutputSize,
		})
		if err != nil {
			return nil, err
		}
	}
	return ParseDailySeries(body)
}

// -----------------------------------------------------------------------------

func isPremiumEndpointError(err error) bool {
	ue, ok := helpers.AsUpstreamError(err)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(ue.Message), premiumEndpointMarker)
}
