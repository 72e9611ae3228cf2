package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/safecircle/peer_support_system/internal/models"
	"github.com/sirupsen/logrus"
)

// CircleService определяет контракт для чтения кругов и управления членством
type CircleService interface {
	GetCircle(ctx context.Context, id uuid.UUID) (*models.Circle, []*models.CircleMember, error)
	VerifyMember(ctx context.Context, circleID uuid.UUID, participantID string) (*models.CircleMember, error)
	LeaveCircle(ctx context.Context, circleID uuid.UUID, participantID string) error
	Stats(ctx context.Context) (*models.CircleStats, error)
}

type circleService struct {
	circles CircleRepository
	members MemberRepository
	logger  *logrus.Logger
}

func NewCircleService(circles CircleRepository, members MemberRepository, logger *logrus.Logger) CircleService {
	return &circleService{
		circles: circles,
		members: members,
		logger:  logger,
	}
}

// GetCircle возвращает круг (через кеш) и список его активных участников
func (s *circleService) GetCircle(ctx context.Context, id uuid.UUID) (*models.Circle, []*models.CircleMember, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "circle",
		"method":    "GetCircle",
		"circle_id": id,
	})

	circle, err := s.circles.GetCircleFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Circle cache lookup failed, falling back to database")
	}

	if circle == nil {
		circle, err = s.circles.GetByID(ctx, id)
		if err != nil {
			log.WithError(err).Warn("Failed to get circle")
			return nil, nil, fmt.Errorf("service: could not get circle: %w", err)
		}
		if err := s.circles.SetCircleCache(ctx, circle); err != nil {
			log.WithError(err).Warn("Failed to cache circle")
		}
	}

	members, err := s.members.ListActiveMembers(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to list circle members")
		return nil, nil, fmt.Errorf("service: could not list circle members: %w", err)
	}

	return circle, members, nil
}

// VerifyMember проверяет активное членство участника в круге. Используется
// при установлении real-time подключения.
func (s *circleService) VerifyMember(ctx context.Context, circleID uuid.UUID, participantID string) (*models.CircleMember, error) {
	member, err := s.members.GetActiveMember(ctx, circleID, participantID)
	if err != nil {
		return nil, fmt.Errorf("service: could not verify membership: %w", err)
	}
	if member == nil {
		return nil, ErrNotAMember
	}
	return member, nil
}

// LeaveCircle логически удаляет членство. Декремент счетчика происходит не
// более одного раза на членство: повторный выход - no-op.
func (s *circleService) LeaveCircle(ctx context.Context, circleID uuid.UUID, participantID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "circle",
		"method":         "LeaveCircle",
		"circle_id":      circleID,
		"participant_id": participantID,
	})
	log.Info("Attempting to leave circle")

	left, err := s.circles.LeaveCircle(ctx, circleID, participantID)
	if err != nil {
		log.WithError(err).Warn("Failed to leave circle")
		return fmt.Errorf("service: could not leave circle: %w", err)
	}

	if !left {
		log.Info("Membership already inactive, leave is a no-op")
		return nil
	}

	if err := s.circles.InvalidateCircleCache(ctx, circleID); err != nil {
		log.WithError(err).Warn("Failed to invalidate circle cache after leave")
	}

	log.Info("Left circle successfully")
	return nil
}

// Stats возвращает агрегированную статистику для внешних потребителей
func (s *circleService) Stats(ctx context.Context) (*models.CircleStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "circle",
		"method":  "Stats",
	})

	stats, err := s.circles.Stats(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to get circle stats")
		return nil, fmt.Errorf("service: could not get circle stats: %w", err)
	}
	return stats, nil
}
