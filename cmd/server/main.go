package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"wallapop-bridge/internal/config"
	"wallapop-bridge/internal/handler"
	"wallapop-bridge/internal/infrastructure/wallapop"
	"wallapop-bridge/internal/usecase"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// One client per process; the proxy endpoint travels with it instead of
	// living in module-level state.
	client, err := wallapop.New(wallapop.Options{
		APIBase:  cfg.APIBase,
		WebBase:  cfg.WebBase,
		ProxyURL: cfg.ProxyURL,
		Timeout:  cfg.UpstreamTimeout,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal("failed to build marketplace client", zap.Error(err))
	}

	searchUC := usecase.NewSearchUsecase(client)
	itemUC := usecase.NewItemUsecase(client)
	dirUC := usecase.NewDirectoryUsecase(client)
	chatUC := usecase.NewChatUsecase(searchUC, client, cfg.ChatBase)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	h := handler.NewBridgeHandler(searchUC, itemUC, dirUC, chatUC, logger)
	h.Register(e)

	go func() {
		logger.Info("server starting", zap.String("address", cfg.Address))
		if err := e.Start(cfg.Address); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}
