// Package main provides the entry point for the HTTP server.
package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/lanpartylabs/tournament_api/internal/config"
	"github.com/lanpartylabs/tournament_api/internal/database"
	"github.com/lanpartylabs/tournament_api/internal/database/migrate"
	"github.com/lanpartylabs/tournament_api/internal/health"
	"github.com/lanpartylabs/tournament_api/internal/middleware"
	teamRouter "github.com/lanpartylabs/tournament_api/internal/team/router"
	tournamentRouter "github.com/lanpartylabs/tournament_api/internal/tournament/router"
	userRepository "github.com/lanpartylabs/tournament_api/internal/user/repository"
	"github.com/lanpartylabs/tournament_api/pkg/logger"
)

func main() {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	db, err := database.New()
	if err != nil {
		appLogger.Fatalw("failed to connect to database", "error", err)
	}

	if err := migrate.Migrate(db); err != nil {
		appLogger.Fatalw("failed to apply migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(appLogger))
	r.Use(middleware.Logger(appLogger))
	r.Use(middleware.Authenticate(userRepository.New(db), appLogger))

	health.RegisterRoutes(r, db, appLogger)
	tournamentRouter.RegisterRoutes(r, db, appLogger)
	teamRouter.RegisterRoutes(r, db, cfg.Registration, appLogger)

	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	appLogger.Infow("starting server", "address", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		appLogger.Fatalw("server stopped", "error", err)
	}
}
