package network

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"stock-watchlist/src/logger"
	"stock-watchlist/src/models"
)

// defaultUserAgent is sent when the config does not name one.
const defaultUserAgent = "stock-watchlist/1.0"

// -----------------------------------------------------------------------------

type NetworkManager struct {
	Config *models.MConfig
	Client *http.Client
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewNetworkManager(cfg *models.MConfig, log *logger.Logger) *NetworkManager {
	return &NetworkManager{
		Config: cfg,
		Logger: log,
		Client: &http.Client{
			Timeout: time.Duration(cfg.Network.RequestTimeout) * time.Second,
		},
	}
}

// -----------------------------------------------------------------------------

// Get performs a single GET request. One failure is one failure: retry policy
// belongs to the caller, not the transport.
func (nm *NetworkManager) Get(urlStr string, params map[string]string) ([]byte, int, error) {
	reqUrl, err := url.Parse(urlStr)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid url %q: %w", urlStr, err)
	}

	q := reqUrl.Query()
	for k, v := range params {
		q.Add(k, v)
	}
	reqUrl.RawQuery = q.Encode()

	req, err := http.NewRequest(http.MethodGet, reqUrl.String(), nil)
	if err != nil {
		return nil, 0, err
	}

	ua := nm.Config.Network.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := nm.Client.Do(req)
	if err != nil {
		nm.Logger.Debug("Request to %s failed: %v", reqUrl.Host, err)
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, resp.StatusCode, nil
}
