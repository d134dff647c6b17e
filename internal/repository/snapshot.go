package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/waste_dashboard/internal/models"
	"github.com/shenikar/waste_dashboard/internal/service"
)

const latestSnapshotKey = "dashboard:snapshot:latest"

// SnapshotRepository хранит последний загруженный набор записей в Redis.
// Каждая загрузка перезаписывает предыдущую.
type SnapshotRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewSnapshotRepository(redisClient *redis.Client, ttl time.Duration) service.SnapshotRepository {
	return &SnapshotRepository{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// SaveSnapshot сохраняет снимок со сроком жизни ttl
func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, snapshot *models.Snapshot) error {
	val, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := r.redisClient.Set(ctx, latestSnapshotKey, val, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// GetLatestSnapshot возвращает последний снимок или nil, если его нет
func (r *SnapshotRepository) GetLatestSnapshot(ctx context.Context) (*models.Snapshot, error) {
	val, err := r.redisClient.Get(ctx, latestSnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	snapshot := &models.Snapshot{}
	if err := json.Unmarshal(val, snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snapshot, nil
}
