package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reviewhub/internal/domain"
)

// ConfigRepo stores the review category configuration as a single
// JSONB document, mirroring the app_settings document the mobile app
// reads.
type ConfigRepo struct {
	db *pgxpool.Pool
}

func NewConfigRepo(db *pgxpool.Pool) *ConfigRepo {
	return &ConfigRepo{db: db}
}

const settingsKey = "app_settings"

func (r *ConfigRepo) GetCategories(ctx context.Context) ([]domain.Category, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `
		SELECT categories FROM reviewhub_config WHERE id=$1
	`, settingsKey).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cats []domain.Category
	if err := json.Unmarshal(raw, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *ConfigRepo) SaveCategories(ctx context.Context, cats []domain.Category, version string) error {
	raw, err := json.Marshal(cats)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO reviewhub_config (id, categories, version, updated_at)
		VALUES ($1,$2,$3,NOW())
		ON CONFLICT (id) DO UPDATE SET
			categories=EXCLUDED.categories,
			version=EXCLUDED.version,
			updated_at=NOW()
	`, settingsKey, raw, version)
	return err
}
