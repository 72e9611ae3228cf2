package badge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	badgeQueueKey = "badge_events"

	EventMemberJoined  = "member_joined"
	EventMessageSent   = "message_sent"
	EventReactionAdded = "reaction_added"
)

// Event - событие для коллаборатора бейджей. Ядро только считает, вся логика
// начисления бейджей живет на стороне коллаборатора.
type Event struct {
	Type          string    `json:"type"`
	CircleID      uuid.UUID `json:"circle_id"`
	ParticipantID string    `json:"participant_id"`
	MessageCount  int       `json:"message_count,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Publisher - интерфейс для публикации событий бейджей
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие бейджа в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal badge event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, badgeQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish badge event to Redis: %w", err)
	}
	return nil
}
