package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/api"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/api/router"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/appcontext"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/config"
	"github.com/rs/zerolog/log"
)

func main() {
	app, err := appcontext.NewApplicationContext(config.GetConfig())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init application")
		return
	}

	server := api.NewServer(app.OrderHandler, app.StoreHandler)

	// 設置路由
	r := router.SetupRouter(server, app.TokenMaker, app.Limiter, app.TrustedProxies, app.Logger)
	if app.Cf.IsDebug() {
		if err := router.PrintRoutes(r, app.Logger); err != nil {
			app.Logger.Warn().Err(err).Msg("print routes failed")
		}
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", app.Cf.ServerPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutdownCompleted := make(chan struct{}, 1)
	go func() {
		<-sigChan
		app.Logger.Info().Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error().Err(err).Msg("Server shutdown error")
		}

		if err := app.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error().Err(err).Msg("Application shutdown error")
		}

		shutdownCompleted <- struct{}{}
	}()

	app.Logger.Info().Msgf("Server starting on %s", srv.Addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		app.Logger.Fatal().Err(err).Msg("server stopped")
	}
	<-shutdownCompleted
	app.Logger.Info().Msg("closed completed")
}
