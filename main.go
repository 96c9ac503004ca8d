package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"jobtrail/internal/api"
	"jobtrail/internal/api/handlers"
	"jobtrail/internal/auth"
	"jobtrail/internal/config"
	"jobtrail/internal/database"
	"jobtrail/internal/logger"
	"jobtrail/internal/services"
	"jobtrail/internal/web"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	secret := cfg.SecretKey
	if secret == "" {
		// Random per-process key: sessions won't survive a restart
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			stdlog.Fatalf("Failed to generate session key: %v", err)
		}
		secret = hex.EncodeToString(buf)
		log.Warn().Msg("SECRET_KEY not set, using a random key; sessions reset on restart")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		stdlog.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		stdlog.Fatalf("Failed to apply database migrations: %v", err)
	}

	// Set up services
	accountService := services.NewAccountService(db)
	jobService := services.NewJobService(db)

	// Set up sessions and page rendering
	sessions := auth.NewSessions([]byte(secret), cfg.AppEnv == "production")
	view, err := web.NewRenderer()
	if err != nil {
		stdlog.Fatalf("Failed to parse templates: %v", err)
	}

	// Set up handlers and router
	accountHandler := handlers.NewAccountHandler(accountService, sessions, view)
	jobHandler := handlers.NewJobHandler(jobService, view)
	router := api.NewRouter(sessions, accountHandler, jobHandler)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			stdlog.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		stdlog.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info().Msg("Server exiting")
}
