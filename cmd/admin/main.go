package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/khetconnect/admin-panel/internal/config"
	"github.com/khetconnect/admin-panel/internal/handlers"
	"github.com/khetconnect/admin-panel/internal/khetapi"
	"github.com/khetconnect/admin-panel/internal/logging"
	"github.com/khetconnect/admin-panel/internal/resource"
	httpserver "github.com/khetconnect/admin-panel/internal/transport/http"
	"github.com/khetconnect/admin-panel/internal/web"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	apiClient := khetapi.NewClient(configuration.API_BASE_URL, configuration.HTTP_TIMEOUT, logger)

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("renderer init error: %v", err)
	}

	e := echo.New()
	e.Renderer = renderer
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())

	deps := httpserver.Deps{
		PageHandler: &handlers.PageHandler{
			API:      apiClient,
			Farmers:  resource.NewFarmers(apiClient, logger),
			Products: resource.NewProducts(apiClient, logger),
			Orders:   resource.NewOrders(apiClient, logger),
			Log:      logger,
		},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.LISTEN_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("admin panel listening", "addr", configuration.LISTEN_ADDR, "api", configuration.API_BASE_URL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	log.Println("shutdown complete")
}
