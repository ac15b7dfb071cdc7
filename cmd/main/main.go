package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"stock-watchlist/src/cache"
	"stock-watchlist/src/config"
	"stock-watchlist/src/data_source/alphavantage"
	"stock-watchlist/src/data_source/mockdata"
	"stock-watchlist/src/interfaces"
	"stock-watchlist/src/logger"
	"stock-watchlist/src/network"
	"stock-watchlist/src/server"
	"stock-watchlist/src/utils"
	"stock-watchlist/src/watchlist"
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "config/default.yaml", "path to config file")
	flag.Parse()

	// Load config from YAML file
	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	appLogger := logger.NewLogger(cfg.Name, logger.ParseLevel(cfg.LogLevel))

	// Setup cache backend
	var store interfaces.ICache
	if !cfg.Cache.Enabled {
		appLogger.Info("Cache disabled; every request goes upstream")
		store = cache.NewNoopCache()
	} else {
		switch cfg.Cache.Backend {
		case "sqlite":
			store, err = cache.NewSQLiteCache(cfg.Cache.DBPath, appLogger.Named("SQLiteCache"))
		case "postgres":
			store, err = cache.NewPostgresCache(cfg.Cache.DSN, appLogger.Named("PostgresCache"))
		default:
			store = cache.NewFileCache(cfg.Cache.Dir, appLogger.Named("FileCache"))
		}
		if err != nil {
			appLogger.Critical("Failed to init cache backend '%s': %v", cfg.Cache.Backend, err)
		}
	}
	defer store.Close()

	// Setup data sources
	netMgr := network.NewNetworkManager(cfg.MConfig, appLogger.Named("Network"))
	provider := alphavantage.NewSource(cfg.MConfig, netMgr, appLogger.Named("AlphaVantage"))

	calendar := utils.NewTradingCalendar()
	mock := mockdata.NewSource(calendar)

	// Orchestrator + web server
	service := watchlist.NewService(cfg, store, provider, mock, appLogger.Named("Watchlist"))
	srv := server.NewWebServer(cfg, service, calendar, appLogger.Named("WebServer"))

	go func() {
		if err := srv.Start(); err != nil {
			appLogger.Critical("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down...")
}
