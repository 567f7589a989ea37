// Package main is the entry point for the inkpress API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"inkpress/src/app/server"
	"inkpress/src/core/ports"
	"inkpress/src/infra/config"
	"inkpress/src/infra/db"
	"inkpress/src/infra/events"
	"inkpress/src/infra/gemini"
	"inkpress/src/infra/identity"
	"inkpress/src/infra/logger"
	"inkpress/src/infra/markdown"
	"inkpress/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

type publisher interface {
	ports.EventPublisher
	ports.ViewInvalidator
	ports.ExternalService
	Close() error
}

func run() error {
	ctx := context.Background()

	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"model", cfg.AI.Model,
	)

	// Initialize database connection
	pg, err := db.New(ctx, cfg.Database, logger.WithComponent(log, "db"))
	if err != nil {
		return err
	}
	defer pg.Close()

	if cfg.Database.Migrate {
		if err := pg.Migrate(ctx); err != nil {
			return err
		}
	}

	postRepo := repo.NewPostgresRepository(pg, log)

	ai, err := gemini.New(ctx, cfg.AI, logger.WithComponent(log, "gemini"))
	if err != nil {
		return err
	}

	verifier, err := identity.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTAudience)
	if err != nil {
		return err
	}
	idp, err := identity.NewGoTrueClient(cfg.Auth, logger.WithComponent(log, "identity"))
	if err != nil {
		return err
	}

	var pub publisher = events.NewNoopPublisher(logger.WithComponent(log, "events"))
	if cfg.Events.RabbitMQURL != "" {
		rmq, err := events.NewRabbitMQPublisher(cfg.Events.RabbitMQURL, logger.WithComponent(log, "events"))
		if err != nil {
			return err
		}
		pub = rmq
	} else {
		log.Warn("APP_RABBITMQ_URL not set, events and view invalidations are dropped")
	}
	defer func() {
		if err := pub.Close(); err != nil {
			logger.Error(log, "failed to close event publisher", "error", err)
		}
	}()

	srv := server.New(cfg, log, server.Deps{
		Posts:    postRepo,
		Auth:     verifier,
		Identity: idp,
		AI:       ai,
		Views:    pub,
		Events:   pub,
		Renderer: markdown.NewRenderer(),
		Components: map[string]ports.ExternalService{
			"database": postRepo,
			"ai":       ai,
			"identity": idp,
			"events":   pub,
		},
	})

	// Run blocks until shutdown signal is received
	return srv.Run()
}
