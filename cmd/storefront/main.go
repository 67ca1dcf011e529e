// Command storefront runs the Duck Shop view server: a local HTTP front for
// the remote shop API that owns the session, the cart badge, and the
// payment/tracking selection state.
//
// @title        Duck Shop Storefront API
// @version      1.0
// @description  Local view server for the Duck Shop storefront client.
// @BasePath     /api/v1
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	_ "github.com/duckshop/go-storefront/docs"
	"github.com/duckshop/go-storefront/internal/config"
	httpapi "github.com/duckshop/go-storefront/internal/http"
	"github.com/duckshop/go-storefront/internal/observability"
	"github.com/duckshop/go-storefront/internal/repo"
	"github.com/duckshop/go-storefront/internal/sysutil"
)

const version = "1.0.0"

func main() {
	// Optional .env for local development; real deployments use the process
	// environment.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.SetupLogger(cfg.LogLevel, cfg.LogPretty)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	db, err := repo.OpenSQLite(cfg.SessionDBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.SessionDBPath).Msg("open session db failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("session db migration failed")
	}

	app := httpapi.NewApp(ctx, cfg, db)

	r := gin.New()
	httpapi.RegisterRoutes(r, app, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("shop_api", cfg.API.BaseURL).
			Msg("storefront listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown failed")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
