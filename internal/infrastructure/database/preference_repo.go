package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sitesettings/internal/domain"
	"sitesettings/internal/ports/output"
)

var _ output.KeyValueStore = (*PreferenceRepository)(nil)

const (
	getPreference = `SELECT value FROM preferences WHERE key = $1`

	upsertPreference = `
INSERT INTO preferences (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
)

// PreferenceRepository implements output.KeyValueStore on the preferences
// table using pgx.
type PreferenceRepository struct {
	pool *pgxpool.Pool
}

// NewPreferenceRepository creates a PreferenceRepository.
func NewPreferenceRepository(pool *pgxpool.Pool) *PreferenceRepository {
	return &PreferenceRepository{pool: pool}
}

// Close releases the connection pool.
func (r *PreferenceRepository) Close() {
	r.pool.Close()
}

func (r *PreferenceRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.pool.QueryRow(ctx, getPreference, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, fmt.Errorf("get preference: %w", err)
	}
	return value, nil
}

// Set stores value, which must be a JSON document, under key.
func (r *PreferenceRepository) Set(ctx context.Context, key string, value []byte) error {
	if _, err := r.pool.Exec(ctx, upsertPreference, key, string(value)); err != nil {
		return fmt.Errorf("upsert preference: %w", err)
	}
	return nil
}
