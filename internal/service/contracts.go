package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/safecircle/peer_support_system/internal/models"
)

//go:generate mockgen -source=contracts.go -destination=mocks/mock_contracts.go -package=mocks

// CircleRepository определяет контракт для работы с хранилищем кругов.
// JoinCircle и LeaveCircle обязаны быть атомарными: счетчик member_count
// меняется строго вместе с членством, гонка двух вступлений за последнее
// место не может превысить max_members.
type CircleRepository interface {
	Create(ctx context.Context, circle *models.Circle) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Circle, error)
	FindCandidates(ctx context.Context, incidentType, locationRegion, language string, limit int) ([]*models.Circle, error)
	JoinCircle(ctx context.Context, circleID uuid.UUID, member *models.CircleMember) error
	LeaveCircle(ctx context.Context, circleID uuid.UUID, participantID string) (bool, error)
	Stats(ctx context.Context) (*models.CircleStats, error)
	GetCircleFromCache(ctx context.Context, id uuid.UUID) (*models.Circle, error)
	SetCircleCache(ctx context.Context, circle *models.Circle) error
	InvalidateCircleCache(ctx context.Context, id uuid.UUID) error
}

// MemberRepository определяет контракт для чтения членств
type MemberRepository interface {
	// GetActiveMember возвращает (nil, nil), если активного членства нет
	GetActiveMember(ctx context.Context, circleID uuid.UUID, participantID string) (*models.CircleMember, error)
	ListActiveMembers(ctx context.Context, circleID uuid.UUID) ([]*models.CircleMember, error)
}

// MessageRepository определяет контракт для журнала сообщений круга.
// Insert назначает serverTimestamp, монотонно неубывающий внутри круга, и в
// той же транзакции обновляет счетчики активности отправителя.
type MessageRepository interface {
	Insert(ctx context.Context, msg *models.CircleMessage) (senderMessageCount int, err error)
	List(ctx context.Context, circleID uuid.UUID, limit int, before *time.Time) ([]*models.CircleMessage, error)
	GetByID(ctx context.Context, circleID, messageID uuid.UUID) (*models.CircleMessage, error)
	UpdateReactions(ctx context.Context, messageID uuid.UUID, reactions models.Reactions) error
	UpdateBody(ctx context.Context, messageID uuid.UUID, body string, editedAt time.Time) error
}

// Broadcaster рассылает событие всем подключенным участникам круга.
// Вызовы fire-and-forget: отправитель никогда не ждет доставки.
type Broadcaster interface {
	BroadcastNewMessage(circleID uuid.UUID, msg *models.CircleMessage)
	BroadcastMessageUpdate(circleID uuid.UUID, msg *models.CircleMessage)
}

// SemanticMatcher - опциональный внешний коллаборатор семантического подбора.
// ok=false без ошибки означает "подходящего кандидата нет, создать новый круг".
// Любая ошибка или неоднозначный ответ трактуется вызывающим как отказ от
// обогащения и откат к эвристике.
type SemanticMatcher interface {
	SuggestBestCandidate(ctx context.Context, candidates []*models.Circle, profile *models.SeekerProfile) (id uuid.UUID, ok bool, err error)
}
