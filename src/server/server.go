package server

import (
	"fmt"
	"strings"

	"stock-watchlist/src/config"
	"stock-watchlist/src/logger"
	"stock-watchlist/src/utils"
	"stock-watchlist/src/watchlist"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// WebServer
// -----------------------------------------------------------------------------

type WebServer struct {
	Config   *config.Config
	Logger   *logger.Logger
	Service  *watchlist.Service
	Calendar *utils.TradingCalendar
	engine   *gin.Engine
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewWebServer(cfg *config.Config, svc *watchlist.Service, cal *utils.TradingCalendar, log *logger.Logger) *WebServer {
	// Set Gin mode
	if cfg.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &WebServer{
		Config:   cfg,
		Logger:   log,
		Service:  svc,
		Calendar: cal,
		engine:   gin.Default(),
	}

	// Add CORS Middleware
	s.engine.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") || strings.HasPrefix(origin, "http://localhost:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// setup web routes
	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *WebServer) setupRoutes() {
	s.engine.GET("/api/health", s.getHealth)
	s.engine.GET("/api/config", s.getConfig)
	s.engine.GET("/api/market-status", s.getMarketStatus)

	s.engine.GET("/api/tickers", s.getTickers)
	s.engine.GET("/api/watchlist", s.getWatchlist)
	s.engine.GET("/api/tickers/:symbol", s.getTickerPage)
	s.engine.GET("/api/tickers/:symbol/quote", s.getQuote)
	s.engine.GET("/api/tickers/:symbol/overview", s.getOverview)
	s.engine.GET("/api/tickers/:symbol/daily", s.getDailySeries)
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *WebServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting server on %s", addr)
	return s.engine.Run(addr)
}

// -----------------------------------------------------------------------------

// Engine exposes the router for tests.
func (s *WebServer) Engine() *gin.Engine {
	return s.engine
}
