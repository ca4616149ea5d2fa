package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Lalithkumar18-lk/Ai/internal/ai"
	"github.com/Lalithkumar18-lk/Ai/internal/catalog"
	"github.com/Lalithkumar18-lk/Ai/internal/config"
	"github.com/Lalithkumar18-lk/Ai/internal/db"
	"github.com/Lalithkumar18-lk/Ai/internal/events"
	httpapi "github.com/Lalithkumar18-lk/Ai/internal/http"
	"github.com/Lalithkumar18-lk/Ai/internal/http/handlers"
	"github.com/Lalithkumar18-lk/Ai/internal/registry"
	"github.com/Lalithkumar18-lk/Ai/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "case-registry").Logger()

	schema, err := registry.SchemaByName(cfg.CaseSchema)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid case schema")
	}
	reg, err := registry.New(schema)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build registry")
	}
	cat := catalog.ForSchema(schema.Name)

	desk := &service.Desk{
		Registry:    reg,
		Events:      events.NopPublisher{},
		Generator:   catalog.NewGenerator(cat, nil),
		Catalog:     cat,
		StreamPause: cfg.StreamPause,
		Logger:      logger,
	}

	ctx := context.Background()
	var store handlers.Pinger
	if cfg.DatabaseURL != "" {
		s, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect db")
		}
		defer s.Close()
		if err := s.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to ensure db schema")
		}
		archived, err := s.ListCases(ctx, schema.Name)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load archived cases")
		}
		if err := reg.Restore(archived); err != nil {
			logger.Fatal().Err(err).Msg("failed to restore cases")
		}
		logger.Info().Int("cases", len(archived)).Msg("restored archived cases")
		desk.Archive = s
		store = s
	}

	if brokers := cfg.Brokers(); len(brokers) > 0 {
		pub, err := events.NewKafkaPublisher(brokers, cfg.KafkaTopic)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create kafka publisher")
		}
		defer pub.Close()
		desk.Events = pub
		logger.Info().Strs("brokers", brokers).Str("topic", cfg.KafkaTopic).Msg("publishing case events")
	}

	if cfg.AssistantBaseURL == "" {
		desk.Responder = ai.NewMockResponder(cat)
		logger.Info().Msg("using mock chat responder")
	} else {
		desk.Responder = ai.NewAssistant(cfg.AssistantBaseURL, cfg.AssistantModel, cfg.AssistantAPIKey, cfg.AssistantMaxTokens)
	}

	if err := desk.Seed(ctx, cfg.SeedCases); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed cases")
	}

	router := httpapi.Router(cfg, desk, store, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Str("schema", schema.Name).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
