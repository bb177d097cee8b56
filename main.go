package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/scribeapp/scribe-be/internal/api"
	"github.com/scribeapp/scribe-be/internal/auth"
	"github.com/scribeapp/scribe-be/internal/config"
	"github.com/scribeapp/scribe-be/internal/database"
	"github.com/scribeapp/scribe-be/internal/logger"
	"github.com/scribeapp/scribe-be/internal/services"
)

func main() {
	logger.Init()

	// Load configuration. A missing JWT secret is fatal here, not a
	// per-request error.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up services
	tokenService := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenLifetime)
	eventService := services.NewEventService(db)
	userService := services.NewUserService(db, eventService)
	postService := services.NewPostService(db, eventService)

	// Set up router
	router := api.NewRouter(tokenService, userService, postService, eventService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
