package root

import (
	"context"
	"database/sql"

	"github.com/vytor/studybuddy/internal/config"
	"github.com/vytor/studybuddy/internal/db"
	"github.com/vytor/studybuddy/internal/game"
	"github.com/vytor/studybuddy/internal/jobs"
	"github.com/vytor/studybuddy/internal/logger"
	"github.com/vytor/studybuddy/internal/repository/sqlite"
	"github.com/vytor/studybuddy/internal/services"
	"github.com/vytor/studybuddy/internal/worker"
)

// openService builds the same store and history queue the server uses. cleanup
// drains queued history writes before closing the database.
func openService(ctx context.Context) (services.GameService, func(), error) {
	cfg, database, err := openDB()
	if err != nil {
		return nil, nil, err
	}
	return newService(ctx, cfg, database.DB)
}

// openDB loads the config, applies the --db override and opens the database.
func openDB() (config.Config, *db.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	logger.SetDefault(logger.New(logger.WithLevel(logger.WARN)))

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, database, nil
}

func newService(ctx context.Context, cfg config.Config, database *sql.DB) (services.GameService, func(), error) {
	store, err := game.New(ctx, game.Config{
		StoreName:     cfg.StoreName,
		StartingCoins: cfg.StartingCoins,
	}, sqlite.NewStateRepository(database))
	if err != nil {
		database.Close()
		return nil, nil, err
	}
	if _, err := store.EnsureDailyQuests(ctx, store.Now()); err != nil {
		store.Close()
		database.Close()
		return nil, nil, err
	}

	pool := worker.NewPool(1, cfg.QueueSize)
	pool.Start(ctx)
	queue := jobs.NewWorkerQueue(pool, sqlite.NewSessionRepository(database), sqlite.NewRewardRepository(database))

	cleanup := func() {
		pool.Stop()
		store.Close()
		database.Close()
	}
	return services.NewGameService(store, queue), cleanup, nil
}
