package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/userbinhq/userbin/internal/api"
	"github.com/userbinhq/userbin/internal/config"
	"github.com/userbinhq/userbin/internal/factory"
	"github.com/userbinhq/userbin/internal/services/token"
	"github.com/userbinhq/userbin/internal/store/jsonbin"
	redisstore "github.com/userbinhq/userbin/internal/store/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.UsingInsecureSecret() {
		logger.Warn("JWT_SECRET is unset; using insecure default, do not deploy like this")
	}

	// Build factory config
	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.Storage.Type,
		TokenConfig: token.Config{Secret: cfg.JWTSecret},
	}

	switch cfg.Storage.Type {
	case factory.StorageTypeJSONBin:
		if cfg.JSONBin.BinID == "" {
			logger.Error("JSONBIN_BIN_ID required when STORAGE_TYPE=jsonbin")
			os.Exit(1)
		}
		jsonbinCfg := jsonbin.DefaultConfig()
		jsonbinCfg.BaseURL = cfg.JSONBin.URL
		jsonbinCfg.BinID = cfg.JSONBin.BinID
		jsonbinCfg.MasterKey = cfg.JSONBin.MasterKey
		jsonbinCfg.AccessKey = cfg.JSONBin.AccessKey
		factoryCfg.JSONBinConfig = &jsonbinCfg
	case factory.StorageTypeRedis:
		redisCfg := redisstore.DefaultConfig()
		redisCfg.URL = cfg.Redis.URL
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		AuthService:   app.AuthService,
		AllowedOrigin: cfg.AllowedOrigin,
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", router)

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(mux, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
