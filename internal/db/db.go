package db

import (
	"context"
	"fmt"

	"github.com/senyabanana/capital-schemes/internal/router/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitDb connects to the database and returns a connection pool.
func InitDb(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	databaseUrl, err := ConnString(cfg)
	if err != nil {
		return nil, err
	}

	dbPool, err := pgxpool.New(ctx, databaseUrl)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return dbPool, nil
}

// ConnString returns POSTGRES_CONN, or builds a connection string from the individual settings.
func ConnString(cfg config.Config) (string, error) {
	if cfg.PostgresConn != "" {
		return cfg.PostgresConn, nil
	}
	if cfg.PostgresUser == "" || cfg.PostgresPass == "" || cfg.PostgresHost == "" || cfg.PostgresPort == "" || cfg.PostgresDB == "" {
		return "", fmt.Errorf("one or more database connection environment variables are missing")
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.PostgresUser, cfg.PostgresPass, cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB), nil
}
