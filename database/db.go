package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"train-induction-ai/config"
	"train-induction-ai/logger"
)

// Options tune connection retries
type Options struct {
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultOptions mirror a container start-up where postgres may lag behind the app
func DefaultOptions() Options {
	return Options{MaxRetries: 30, RetryDelay: 2 * time.Second}
}

// Connect opens the database selected by cfg.DBDriver and waits until it answers a ping
func Connect(ctx context.Context, cfg *config.Config, log *logger.Logger, opts Options) (*sql.DB, Dialect, error) {
	dialect, err := ParseDialect(cfg.DBDriver)
	if err != nil {
		return nil, "", err
	}

	db, err := sql.Open(dialect.DriverName(), dataSourceName(cfg, dialect))
	if err != nil {
		return nil, "", fmt.Errorf("error opening database: %w", err)
	}

	// Configure connection pool
	if dialect == SQLite {
		// a single writer avoids SQLITE_BUSY across pooled connections
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if opts.MaxRetries < 1 {
		opts.MaxRetries = 1
	}

	// Test the connection with retries
	for i := 0; i < opts.MaxRetries; i++ {
		err = db.PingContext(ctx)
		if err == nil {
			log.Info("Successfully connected to database", "driver", string(dialect))
			return db, dialect, nil
		}
		log.Warn("Failed to connect to database", "attempt", i+1, "max_attempts", opts.MaxRetries, "error", err)

		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, "", ctx.Err()
		case <-time.After(opts.RetryDelay):
		}
	}

	_ = db.Close()
	return nil, "", fmt.Errorf("failed to connect to database after %d attempts: %w", opts.MaxRetries, err)
}

func dataSourceName(cfg *config.Config, dialect Dialect) string {
	if dialect == SQLite {
		return cfg.DBPath
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
}
