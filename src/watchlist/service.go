package watchlist

import (
	"encoding/json"
	"time"

	"stock-watchlist/src/cache"
	"stock-watchlist/src/config"
	"stock-watchlist/src/interfaces"
	"stock-watchlist/src/logger"
	"stock-watchlist/src/models"

	"stock-watchlist/src/data_source/alphavantage"
)

// -----------------------------------------------------------------------------
// Service is the cache-aware fetch orchestrator. Each getter runs one
// cache-or-fetch cycle: read the cache under a key derived from the request
// parameters, on a miss call the provider, then write the normalized record
// back. In mock mode (mocks forced, or no API credential configured) the
// mock source answers directly and the network is never touched.
//
// Two concurrent misses for the same key may both fetch and both write; the
// last write wins. With a 24h TTL that race is accepted, not prevented.
// -----------------------------------------------------------------------------

type Service struct {
	Config   *config.Config
	Cache    interfaces.ICache
	Provider interfaces.IDataSource
	Mock     interfaces.IDataSource
	Logger   *logger.Logger

	ttl      time.Duration
	mockMode bool
}

// -----------------------------------------------------------------------------

func NewService(
	cfg *config.Config,
	c interfaces.ICache,
	provider interfaces.IDataSource,
	mock interfaces.IDataSource,
	log *logger.Logger,
) *Service {
	s := &Service{
		Config:   cfg,
		Cache:    c,
		Provider: provider,
		Mock:     mock,
		Logger:   log,
		ttl:      time.Duration(cfg.Cache.TTLHours) * time.Hour,
		mockMode: cfg.MockMode(),
	}
	if s.mockMode {
		log.Warning("Mock mode active (forced=%v, credential present=%v): serving embedded data, no upstream calls",
			cfg.Mocks.Force, cfg.Upstream.APIKey != "")
	}
	return s
}

// -----------------------------------------------------------------------------

// GetQuote returns the current quote for one watchlist ticker.
func (s *Service) GetQuote(symbol models.Ticker) (*models.CachedResult[models.MQuote], error) {
	params := map[string]string{
		"function": alphavantage.FuncGlobalQuote,
		"symbol":   symbol.String(),
	}
	return getCached(s, params,
		func() (models.MQuote, error) { return deref(s.Provider.FetchQuote(symbol)) },
		func() (models.MQuote, error) { return deref(s.Mock.FetchQuote(symbol)) },
	)
}

// -----------------------------------------------------------------------------

// GetOverview returns company fundamentals for one watchlist ticker.
func (s *Service) GetOverview(symbol models.Ticker) (*models.CachedResult[models.MCompanyOverview], error) {
	params := map[string]string{
		"function": alphavantage.FuncOverview,
		"symbol":   symbol.String(),
	}
	return getCached(s, params,
		func() (models.MCompanyOverview, error) { return deref(s.Provider.FetchOverview(symbol)) },
		func() (models.MCompanyOverview, error) { return deref(s.Mock.FetchOverview(symbol)) },
	)
}

// -----------------------------------------------------------------------------

// GetDailySeries returns the daily price history for one watchlist ticker,
// ascending by date.
func (s *Service) GetDailySeries(symbol models.Ticker) (*models.CachedResult[models.MDailySeries], error) {
	params := map[string]string{
		"function":   alphavantage.FuncDailySeries,
		"symbol":     symbol.String(),
		"outputsize": s.Config.Upstream.OutputSize,
	}
	return getCached(s, params,
		func() (models.MDailySeries, error) { return s.Provider.FetchDailySeries(symbol) },
		func() (models.MDailySeries, error) { return s.Mock.FetchDailySeries(symbol) },
	)
}

// -----------------------------------------------------------------------------

// getCached runs the cache-or-compute cycle shared by the three getters.
// In mock mode the mock source answers and the cache is bypassed entirely.
func getCached[T any](
	s *Service,
	params map[string]string,
	fetch func() (T, error),
	mock func() (T, error),
) (*models.CachedResult[T], error) {
	if s.mockMode {
		data, err := mock()
		if err != nil {
			return nil, err
		}
		return &models.CachedResult[T]{Data: data, CachedAt: time.Now(), FromMock: true}, nil
	}

	key := cache.Key(params)

	if payload, writtenAt, ok := s.Cache.Read(key, s.ttl); ok {
		var data T
		if err := json.Unmarshal(payload, &data); err == nil {
			return &models.CachedResult[T]{Data: data, CachedAt: writtenAt}, nil
		}
		// The envelope was readable but the payload no longer matches the
		// record shape; treat as a miss and refetch.
		s.Logger.Warning("Discarding undecodable cache payload for %s %s", params["function"], params["symbol"])
	}

	data, err := fetch()
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(data); err == nil {
		s.Cache.Write(key, payload)
	} else {
		s.Logger.Warning("Failed to encode %s %s for caching: %v", params["function"], params["symbol"], err)
	}

	return &models.CachedResult[T]{Data: data, CachedAt: time.Now()}, nil
}

// -----------------------------------------------------------------------------

// deref adapts the provider's pointer returns to the value-typed results the
// cache envelope stores.
func deref[T any](v *T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return *v, nil
}
