package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crime_file_system/internal/models"
)

const (
	webhookQueueKey = "record_change_events"
)

// ChangeEvent - событие об изменении коллекции записей
type ChangeEvent struct {
	EventID   uuid.UUID         `json:"event_id"`
	Kind      models.ChangeKind `json:"kind"`
	RecordIDs []models.RecordID `json:"record_ids"`
	Total     int               `json:"total"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewChangeEvent собирает событие из описания изменения
func NewChangeEvent(change models.Change, at time.Time) ChangeEvent {
	ids := change.RecordIDs
	if ids == nil {
		ids = []models.RecordID{}
	}
	return ChangeEvent{
		EventID:   uuid.New(),
		Kind:      change.Kind,
		RecordIDs: ids,
		Total:     change.Total,
		Timestamp: at,
	}
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event ChangeEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// NopPublisher используется, когда вебхуки не настроены
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ChangeEvent) error {
	return nil
}
