package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/safecircle/peer_support_system/internal/badge"
	"github.com/safecircle/peer_support_system/internal/config"
	"github.com/safecircle/peer_support_system/internal/models"
	"github.com/sirupsen/logrus"
)

// MessageService определяет контракт для отправки и чтения сообщений круга.
// Один и тот же путь обслуживает real-time канал и HTTP fallback.
type MessageService interface {
	SendMessage(ctx context.Context, circleID uuid.UUID, participantID, body string) (*models.CircleMessage, error)
	GetMessages(ctx context.Context, circleID uuid.UUID, limit int, before *time.Time) ([]*models.CircleMessage, error)
	AddReaction(ctx context.Context, circleID, messageID uuid.UUID, participantID, emoji string) (*models.CircleMessage, error)
	RemoveReaction(ctx context.Context, circleID, messageID uuid.UUID, participantID, emoji string) (*models.CircleMessage, error)
	EditMessage(ctx context.Context, circleID, messageID uuid.UUID, participantID, body string) (*models.CircleMessage, error)
}

type messageService struct {
	messages    MessageRepository
	members     MemberRepository
	broadcaster Broadcaster
	badges      badge.Publisher
	logger      *logrus.Logger
	cfg         *config.Config
}

func NewMessageService(
	messages MessageRepository,
	members MemberRepository,
	broadcaster Broadcaster,
	badges badge.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) MessageService {
	return &messageService{
		messages:    messages,
		members:     members,
		broadcaster: broadcaster,
		badges:      badges,
		logger:      logger,
		cfg:         cfg,
	}
}

// SendMessage проверяет членство, оценивает риск, сохраняет сообщение с
// серверной меткой времени и рассылает его подключенным участникам круга
func (s *messageService) SendMessage(ctx context.Context, circleID uuid.UUID, participantID, body string) (*models.CircleMessage, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "message",
		"method":         "SendMessage",
		"circle_id":      circleID,
		"participant_id": participantID,
	})

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("message body is required: %w", ErrValidation)
	}
	if len(body) > s.cfg.MessageMaxLen {
		return nil, fmt.Errorf("message body exceeds %d characters: %w", s.cfg.MessageMaxLen, ErrValidation)
	}

	member, err := s.requireActiveMember(ctx, circleID, participantID)
	if err != nil {
		return nil, err
	}

	riskScore := ScoreMessageRisk(body)

	msg := &models.CircleMessage{
		ID:                uuid.New(),
		CircleID:          circleID,
		SenderID:          participantID,
		SenderDisplayName: member.DisplayName, // снимок на момент отправки
		Body:              body,
		RiskScore:         riskScore,
		Flagged:           riskScore > FlagThreshold,
		Reactions:         models.Reactions{},
	}

	messageCount, err := s.messages.Insert(ctx, msg)
	if err != nil {
		log.WithError(err).Error("Failed to persist message")
		return nil, fmt.Errorf("service: could not persist message: %w", err)
	}

	if msg.Flagged {
		log.WithFields(logrus.Fields{"message_id": msg.ID, "risk_score": riskScore}).
			Warn("Message flagged by risk scorer")
	}

	// Уведомление коллаборатора бейджей - побочный эффект после отправки
	if err := s.badges.Publish(ctx, badge.Event{
		Type:          badge.EventMessageSent,
		CircleID:      circleID,
		ParticipantID: participantID,
		MessageCount:  messageCount,
		Timestamp:     time.Now().UTC(),
	}); err != nil {
		log.WithError(err).Warn("Failed to publish message_sent badge event")
	}

	// Fire-and-forget: доставка подключенным - at-least-once, отключенные
	// участники добирают историю при переподключении
	s.broadcaster.BroadcastNewMessage(circleID, msg)

	return msg, nil
}

// GetMessages возвращает последние limit сообщений с serverTimestamp < before
// (или просто последние limit), в порядке возрастания метки времени
func (s *messageService) GetMessages(ctx context.Context, circleID uuid.UUID, limit int, before *time.Time) ([]*models.CircleMessage, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}

	msgs, err := s.messages.List(ctx, circleID, limit, before)
	if err != nil {
		s.logger.WithError(err).WithField("circle_id", circleID).Error("Failed to list messages")
		return nil, fmt.Errorf("service: could not list messages: %w", err)
	}
	return msgs, nil
}

// AddReaction добавляет реакцию участника (идемпотентно) и рассылает обновление
func (s *messageService) AddReaction(ctx context.Context, circleID, messageID uuid.UUID, participantID, emoji string) (*models.CircleMessage, error) {
	if strings.TrimSpace(emoji) == "" {
		return nil, fmt.Errorf("reaction emoji is required: %w", ErrValidation)
	}

	if _, err := s.requireActiveMember(ctx, circleID, participantID); err != nil {
		return nil, err
	}

	msg, err := s.messages.GetByID(ctx, circleID, messageID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get message: %w", err)
	}

	if msg.Reactions == nil {
		msg.Reactions = models.Reactions{}
	}
	if !msg.Reactions.Add(emoji, participantID) {
		return msg, nil // реакция уже стоит
	}

	if err := s.messages.UpdateReactions(ctx, messageID, msg.Reactions); err != nil {
		return nil, fmt.Errorf("service: could not update reactions: %w", err)
	}

	if err := s.badges.Publish(ctx, badge.Event{
		Type:          badge.EventReactionAdded,
		CircleID:      circleID,
		ParticipantID: participantID,
		Timestamp:     time.Now().UTC(),
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to publish reaction_added badge event")
	}

	s.broadcaster.BroadcastMessageUpdate(circleID, msg)
	return msg, nil
}

// RemoveReaction убирает реакцию участника и рассылает обновление
func (s *messageService) RemoveReaction(ctx context.Context, circleID, messageID uuid.UUID, participantID, emoji string) (*models.CircleMessage, error) {
	if _, err := s.requireActiveMember(ctx, circleID, participantID); err != nil {
		return nil, err
	}

	msg, err := s.messages.GetByID(ctx, circleID, messageID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get message: %w", err)
	}

	if msg.Reactions == nil || !msg.Reactions.Remove(emoji, participantID) {
		return msg, nil // нечего убирать
	}

	if err := s.messages.UpdateReactions(ctx, messageID, msg.Reactions); err != nil {
		return nil, fmt.Errorf("service: could not update reactions: %w", err)
	}

	s.broadcaster.BroadcastMessageUpdate(circleID, msg)
	return msg, nil
}

// EditMessage меняет текст сообщения, ставит флаг edited и метку editedAt.
// Доступно только отправителю.
func (s *messageService) EditMessage(ctx context.Context, circleID, messageID uuid.UUID, participantID, body string) (*models.CircleMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("message body is required: %w", ErrValidation)
	}
	if len(body) > s.cfg.MessageMaxLen {
		return nil, fmt.Errorf("message body exceeds %d characters: %w", s.cfg.MessageMaxLen, ErrValidation)
	}

	if _, err := s.requireActiveMember(ctx, circleID, participantID); err != nil {
		return nil, err
	}

	msg, err := s.messages.GetByID(ctx, circleID, messageID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get message: %w", err)
	}
	if msg.SenderID != participantID {
		return nil, ErrNotMessageSender
	}

	editedAt := time.Now().UTC()
	if err := s.messages.UpdateBody(ctx, messageID, body, editedAt); err != nil {
		return nil, fmt.Errorf("service: could not edit message: %w", err)
	}

	msg.Body = body
	msg.Edited = true
	msg.EditedAt = &editedAt

	s.broadcaster.BroadcastMessageUpdate(circleID, msg)
	return msg, nil
}

func (s *messageService) requireActiveMember(ctx context.Context, circleID uuid.UUID, participantID string) (*models.CircleMember, error) {
	member, err := s.members.GetActiveMember(ctx, circleID, participantID)
	if err != nil {
		return nil, fmt.Errorf("service: could not verify membership: %w", err)
	}
	if member == nil {
		return nil, ErrNotAMember
	}
	return member, nil
}
