package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"urdu-digest/api/router"
	"urdu-digest/config"
	"urdu-digest/db"
	"urdu-digest/eventbus"
	"urdu-digest/fetcher"
	"urdu-digest/gemini"
	"urdu-digest/logger"
	"urdu-digest/pipeline"
	"urdu-digest/quota"
	"urdu-digest/repositories"
	"urdu-digest/services"
)

// @title        Urdu Digest API
// @version      1.0
// @description  Fetches blog posts, summarizes them and translates the summaries to Urdu.
// @BasePath     /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.InitMongo(ctx); err != nil {
		logger.Log.Fatalf("failed to initialize MongoDB: %v", err)
	}
	if err := db.InitPostgres(ctx); err != nil {
		logger.Log.Fatalf("failed to initialize Postgres: %v", err)
	}
	defer db.ClosePostgres()

	// Gemini is optional: without a key every request runs on the local
	// extractive and dictionary fallbacks.
	var ai pipeline.AIClient
	if client, err := gemini.NewClient(ctx, cfg.Gemini); err != nil {
		logger.Log.Warnf("gemini client unavailable, running in fallback mode: %v", err)
	} else {
		ai = client
	}

	var bus eventbus.EventBus
	if cfg.Kafka.Brokers != "" {
		kb, err := eventbus.NewKafkaEventBus(cfg.Kafka.Brokers)
		if err != nil {
			logger.Log.Warnf("kafka unavailable, events disabled: %v", err)
			bus = eventbus.NewNoopEventBus()
		} else {
			bus = kb
		}
	} else {
		bus = eventbus.NewNoopEventBus()
	}
	defer bus.Close()

	articleRepo := repositories.NewArticleRepository(db.Database())
	digestRepo := repositories.NewDigestRepository(db.Pool())
	aiLogRepo := repositories.NewAILogRepository(db.Database())

	quotas := quota.NewRegistry(cfg.Quota.RequestsPerMinute, cfg.Quota.RequestsPerDay)
	pipe := pipeline.New(ai, quotas, services.NewAILogSink(aiLogRepo), pipeline.Options{
		TranslateAttempts: cfg.Translation.MaxAttempts,
		TranslateBackoff:  time.Duration(cfg.Translation.BackoffSeconds) * time.Second,
	})

	digestSvc := services.NewDigestService(
		fetcher.New(cfg.Fetch),
		pipe,
		articleRepo,
		digestRepo,
		bus,
		cfg.Kafka.Topic,
	)
	feedSvc := services.NewFeedService()

	engine := router.New(digestSvc, feedSvc)

	corsMw := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	addr := cfg.Server.Addr
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{
		Addr:    addr,
		Handler: corsMw.Handler(engine),
	}

	go func() {
		logger.Log.Infof("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("graceful shutdown failed: %v", err)
	}
}
