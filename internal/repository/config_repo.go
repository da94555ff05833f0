package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/ai-blog-api/internal/database"
	"github.com/ai-blog-api/internal/models"
)

// configRepo is the concrete implementation of ConfigRepository
type configRepo struct {
	db *database.DB
}

// NewConfigRepo creates a new system config repository
func NewConfigRepo(db *database.DB) ConfigRepository {
	return &configRepo{db: db}
}

// Get retrieves a config row by key. Returns nil when the key is absent,
// which pipelines treat the same as a disabled flag.
func (r *configRepo) Get(ctx context.Context, key string) (*models.SystemConfig, error) {
	query := `SELECT key, value, description, updated_at FROM system_configs WHERE key = $1`

	var cfg models.SystemConfig
	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&cfg.Key, &cfg.Value, &cfg.Description, &cfg.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// List retrieves all config rows ordered by key
func (r *configRepo) List(ctx context.Context) ([]*models.SystemConfig, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT key, value, description, updated_at FROM system_configs ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []*models.SystemConfig
	for rows.Next() {
		var cfg models.SystemConfig
		if err := rows.Scan(&cfg.Key, &cfg.Value, &cfg.Description, &cfg.UpdatedAt); err != nil {
			return nil, err
		}
		configs = append(configs, &cfg)
	}
	return configs, rows.Err()
}

// Upsert writes a config value, last write wins, and returns the stored row
func (r *configRepo) Upsert(ctx context.Context, key, value string) (*models.SystemConfig, error) {
	query := `
		INSERT INTO system_configs (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
		RETURNING key, value, description, updated_at
	`

	var cfg models.SystemConfig
	err := r.db.QueryRowContext(ctx, query, key, value, time.Now()).Scan(
		&cfg.Key, &cfg.Value, &cfg.Description, &cfg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
