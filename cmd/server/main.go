package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/studybuddy/internal/api"
	"github.com/vytor/studybuddy/internal/coach"
	"github.com/vytor/studybuddy/internal/config"
	"github.com/vytor/studybuddy/internal/db"
	"github.com/vytor/studybuddy/internal/game"
	"github.com/vytor/studybuddy/internal/jobs"
	"github.com/vytor/studybuddy/internal/logger"
	"github.com/vytor/studybuddy/internal/repository/sqlite"
	"github.com/vytor/studybuddy/internal/services"
	"github.com/vytor/studybuddy/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration: %v", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("StudyBuddy Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("store_name=%s", cfg.StoreName)
	log.Debug("worker_count=%d", cfg.WorkerCount)
	log.Debug("queue_size=%d", cfg.QueueSize)
	log.Debug("daily_reset=%t", cfg.DailyReset)
	log.Debug("coach_enabled=%t", cfg.Coach.Enabled())

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	ctx := context.Background()

	stateRepo := sqlite.NewStateRepository(database.DB)
	sessionRepo := sqlite.NewSessionRepository(database.DB)
	rewardRepo := sqlite.NewRewardRepository(database.DB)

	store, err := game.New(ctx, game.Config{
		StoreName:     cfg.StoreName,
		StartingCoins: cfg.StartingCoins,
	}, stateRepo, game.WithLogger(log.WithPrefix("store")))
	if err != nil {
		log.Error("failed to load game state: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	// Initialize worker pool
	pool := worker.NewPool(cfg.WorkerCount, cfg.QueueSize)
	pool.Start(ctx)
	queue := jobs.NewWorkerQueue(pool, sessionRepo, rewardRepo)

	schedCtx, stopScheduler := context.WithCancel(ctx)
	var scheduler *worker.Scheduler
	if cfg.DailyReset {
		scheduler = worker.NewScheduler(pool, func(at time.Time) worker.Job {
			return &worker.DailyResetJob{Store: store, At: at}
		})
		go scheduler.Run(schedCtx)
	}

	var llm coach.Completer
	if cfg.Coach.Enabled() {
		llm = coach.NewOpenAIClient(coach.ClientConfig{
			APIKey:  cfg.Coach.APIKey,
			BaseURL: cfg.Coach.BaseURL,
			Timeout: cfg.Coach.Timeout,
		})
	} else {
		log.Warn("GROQ_API_KEY not set, coach answers with canned content")
	}
	studyCoach := coach.New(llm, coach.Config{Model: cfg.Coach.Model, FastModel: cfg.Coach.FastModel})

	srv := &api.Server{
		GameService:    services.NewGameService(store, queue),
		HistoryService: services.NewHistoryService(cfg.StoreName, sessionRepo, rewardRepo),
		CoachService:   services.NewCoachService(store, studyCoach),
		DB:             database,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping scheduler")
	stopScheduler()
	if scheduler != nil {
		<-scheduler.Done()
	}

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Drain history writes before the database closes
	log.Debug("stopping worker pool")
	pool.Stop()

	log.Info("===========================================")
	log.Info("StudyBuddy Server Stopped")
	log.Info("===========================================")
}
