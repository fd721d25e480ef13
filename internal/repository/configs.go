package repository

import (
	"context"
	"time"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

func (r *Repository) GetAllConfigs() ([]*domain.Config, error) {
	query := `SELECT id, key, value FROM configs ORDER BY key`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	configs := []*domain.Config{}
	for rows.Next() {
		var config domain.Config
		if err := rows.Scan(&config.ID, &config.Key, &config.Value); err != nil {
			return nil, err
		}
		configs = append(configs, &config)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return configs, nil
}

func (r *Repository) GetConfigByKey(key string) (*domain.Config, error) {
	query := `SELECT id, value FROM configs WHERE key = $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	config := &domain.Config{Key: key}
	if err := r.dbpool.QueryRowContext(ctx, query, key).Scan(&config.ID, &config.Value); err != nil {
		return nil, err
	}

	return config, nil
}

func (r *Repository) UpsertConfig(config *domain.Config) error {
	query := `
		INSERT INTO configs (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
		RETURNING id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, config.Key, config.Value).Scan(&config.ID); err != nil {
		return err
	}

	return nil
}
