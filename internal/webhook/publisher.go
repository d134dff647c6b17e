package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/waste_dashboard/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	alertQueueKey = "waste_alert_events"
)

// AlertEvent - уведомление муниципальной службе о переполненной локации
type AlertEvent struct {
	RunID     uuid.UUID         `json:"run_id"`
	Locality  string            `json:"locality"`
	Average   float64           `json:"average"`
	Level     models.AlertLevel `json:"level"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewAlertEvent собирает событие из уведомления агрегации
func NewAlertEvent(runID uuid.UUID, alert models.Alert, at time.Time) AlertEvent {
	return AlertEvent{
		RunID:     runID,
		Locality:  alert.Locality,
		Average:   models.Round2(alert.Average),
		Level:     alert.Level,
		Message:   alert.Message,
		Timestamp: at,
	}
}

// AlertPublisher - интерфейс для публикации уведомлений
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher - реализация AlertPublisher, использующая очередь в Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
