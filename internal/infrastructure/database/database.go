// Package database stores preferences in PostgreSQL.
package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config selects the server and, optionally, an on-disk migrations directory
// that replaces the embedded one.
type Config struct {
	URL            string
	MigrationsPath string
}

// Open migrates the preferences schema, then connects and pings the server.
func Open(ctx context.Context, cfg Config) (*PreferenceRepository, error) {
	if cfg.URL == "" {
		return nil, errors.New("database: URL is required")
	}

	version, err := migrateUp(cfg.URL, cfg.MigrationsPath)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}
	log.Printf("✅ database: connected, preferences schema at version %d", version)
	return NewPreferenceRepository(pool), nil
}
