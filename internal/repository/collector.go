package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/waste_dashboard/internal/models"
	"github.com/shenikar/waste_dashboard/internal/service"
)

type CollectorRepository struct {
	db *pgxpool.Pool
}

func NewCollectorRepository(db *pgxpool.Pool) service.CollectorRepository {
	return &CollectorRepository{
		db: db,
	}
}

// ListCollectors возвращает всех сборщиков в порядке добавления
func (r *CollectorRepository) ListCollectors(ctx context.Context) ([]*models.Collector, error) {
	query := `
		SELECT id, name, points, history, created_at
		FROM collectors
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list collectors: %w", err)
	}
	defer rows.Close()

	collectors := make([]*models.Collector, 0)
	for rows.Next() {
		collector := &models.Collector{}
		err := rows.Scan(
			&collector.ID,
			&collector.Name,
			&collector.Points,
			&collector.History,
			&collector.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collector row: %w", err)
		}
		collectors = append(collectors, collector)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return collectors, nil
}

// GetByName возвращает сборщика по имени или nil, если его нет
func (r *CollectorRepository) GetByName(ctx context.Context, name string) (*models.Collector, error) {
	collector := &models.Collector{}
	query := `
		SELECT id, name, points, history, created_at
		FROM collectors
		WHERE name = $1;
	`
	err := r.db.QueryRow(ctx, query, name).Scan(
		&collector.ID,
		&collector.Name,
		&collector.Points,
		&collector.History,
		&collector.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collector by name: %w", err)
	}
	return collector, nil
}
