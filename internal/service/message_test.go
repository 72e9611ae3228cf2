package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/safecircle/peer_support_system/internal/badge"
	badge_mocks "github.com/safecircle/peer_support_system/internal/badge/mocks"
	"github.com/safecircle/peer_support_system/internal/config"
	"github.com/safecircle/peer_support_system/internal/models"
	"github.com/safecircle/peer_support_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestMessageService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestMessageService(t *testing.T) (*messageService, *mocks.MockMessageRepository, *mocks.MockMemberRepository, *mocks.MockBroadcaster, *badge_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	messagesMock := mocks.NewMockMessageRepository(ctrl)
	membersMock := mocks.NewMockMemberRepository(ctrl)
	broadcasterMock := mocks.NewMockBroadcaster(ctrl)
	badgesMock := badge_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		MessageMaxLen: 2000,
	}

	service := NewMessageService(messagesMock, membersMock, broadcasterMock, badgesMock, logger, cfg)
	return service.(*messageService), messagesMock, membersMock, broadcasterMock, badgesMock
}

func activeMember(circleID uuid.UUID, participantID, displayName string) *models.CircleMember {
	return &models.CircleMember{
		CircleID:      circleID,
		ParticipantID: participantID,
		DisplayName:   displayName,
		IsActive:      true,
	}
}

func TestSendMessage_Success(t *testing.T) {
	// Подготовка
	service, messagesMock, membersMock, broadcasterMock, badgesMock := newTestMessageService(t)
	ctx := context.Background()
	circleID := uuid.New()
	serverTS := time.Now().UTC()

	// Ожидания
	membersMock.EXPECT().
		GetActiveMember(ctx, circleID, "anon_1").
		Return(activeMember(circleID, "anon_1", "Brave Phoenix"), nil).
		Times(1)

	messagesMock.EXPECT().
		Insert(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, msg *models.CircleMessage) (int, error) {
			// Симулируем назначение серверной метки времени
			msg.ServerTimestamp = serverTS
			return 5, nil
		}).Times(1)

	badgesMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event badge.Event) {
			assert.Equal(t, badge.EventMessageSent, event.Type)
			assert.Equal(t, 5, event.MessageCount)
		}).Return(nil).Times(1)

	broadcasterMock.EXPECT().BroadcastNewMessage(circleID, gomock.Any()).Times(1)

	// Действие
	msg, err := service.SendMessage(ctx, circleID, "anon_1", "  Hello circle  ")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Hello circle", msg.Body) // пробелы по краям срезаются
	assert.Equal(t, "anon_1", msg.SenderID)
	assert.Equal(t, "Brave Phoenix", msg.SenderDisplayName) // снимок на момент отправки
	assert.Equal(t, serverTS, msg.ServerTimestamp)
	assert.False(t, msg.Flagged)
	assert.NotEqual(t, uuid.Nil, msg.ID)
}

func TestSendMessage_EmptyBody(t *testing.T) {
	// Подготовка
	service, _, _, _, _ := newTestMessageService(t)

	// Действие
	msg, err := service.SendMessage(context.Background(), uuid.New(), "anon_1", "   ")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, msg)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSendMessage_BodyTooLong(t *testing.T) {
	// Подготовка
	service, _, _, _, _ := newTestMessageService(t)
	body := strings.Repeat("a", 2001)

	// Действие
	msg, err := service.SendMessage(context.Background(), uuid.New(), "anon_1", body)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, msg)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSendMessage_NotAMember(t *testing.T) {
	// Подготовка
	service, _, membersMock, _, _ := newTestMessageService(t)
	ctx := context.Background()
	circleID := uuid.New()

	// Ожидания: активного членства нет
	membersMock.EXPECT().
		GetActiveMember(ctx, circleID, "anon_stranger").
		Return(nil, nil).
		Times(1)

	// Действие
	msg, err := service.SendMessage(ctx, circleID, "anon_stranger", "hello")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, msg)
	assert.ErrorIs(t, err, ErrNotAMember)
}

func TestSendMessage_HighRiskIsFlaggedButDelivered(t *testing.T) {
	// Подготовка
	service, messagesMock, membersMock, broadcasterMock, badgesMock := newTestMessageService(t)
	ctx := context.Background()
	circleID := uuid.New()

	// Ожидания: сообщение помечается, но сохраняется и доставляется как обычно
	membersMock.EXPECT().
		GetActiveMember(ctx, circleID, "anon_1").
		Return(activeMember(circleID, "anon_1", "Hopeful Voice"), nil).
		Times(1)
	messagesMock.EXPECT().
		Insert(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, msg *models.CircleMessage) (int, error) {
			assert.True(t, msg.Flagged)
			assert.Greater(t, msg.RiskScore, FlagThreshold)
			return 1, nil
		}).Times(1)
	badgesMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)
	broadcasterMock.EXPECT().BroadcastNewMessage(circleID, gomock.Any()).Times(1)

	// Действие
	msg, err := service.SendMessage(ctx, circleID, "anon_1", "I want to kill and hurt myself, I might die")

	// Проверки
	require.NoError(t, err)
	assert.True(t, msg.Flagged)
}

func TestGetMessages_ClampsLimit(t *testing.T) {
	// Подготовка
	service, messagesMock, _, _, _ := newTestMessageService(t)
	ctx := context.Background()
	circleID := uuid.New()

	// Ожидания: недопустимый limit заменяется значением по умолчанию
	messagesMock.EXPECT().
		List(ctx, circleID, 50, nil).
		Return([]*models.CircleMessage{}, nil).
		Times(2)

	// Действие / Проверки
	_, err := service.GetMessages(ctx, circleID, 0, nil)
	require.NoError(t, err)
	_, err = service.GetMessages(ctx, circleID, 500, nil)
	require.NoError(t, err)
}

func TestAddReaction_Success(t *testing.T) {
	// Подготовка
	service, messagesMock, membersMock, broadcasterMock, badgesMock := newTestMessageService(t)
	ctx := context.Background()
	circleID := uuid.New()
	messageID := uuid.New()

	stored := &models.CircleMessage{
		ID:        messageID,
		CircleID:  circleID,
		SenderID:  "anon_author",
		Body:      "thanks everyone",
		Reactions: models.Reactions{},
	}

	// Ожидания
	membersMock.EXPECT().
		GetActiveMember(ctx, circleID, "anon_1").
		Return(activeMember(circleID, "anon_1", "Strong Heart"), nil).
		Times(1)
	messagesMock.EXPECT().GetByID(ctx, circleID, messageID).Return(stored, nil).Times(1)
	messagesMock.EXPECT().
		UpdateReactions(ctx, messageID, gomock.Any()).
		Do(func(ctx context.Context, id uuid.UUID, reactions models.Reactions) {
			assert.True(t, reactions.Has("❤️", "anon_1"))
		}).Return(nil).Times(1)
	badgesMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event badge.Event) {
			assert.Equal(t, badge.EventReactionAdded, event.Type)
		}).Return(nil).Times(1)
	broadcasterMock.EXPECT().BroadcastMessageUpdate(circleID, stored).Times(1)

	// Действие
	msg, err := service.AddReaction(ctx, circleID, messageID, "anon_1", "❤️")

	// Проверки
	require.NoError(t, err)
	assert.True(t, msg.Reactions.Has("❤️", "anon_1"))
}

func TestAddReaction_DuplicateIsNoOp(t *testing.T) {
	// Подготовка
	service, messagesMock, membersMock, _, _ := newTestMessageService(t)
	ctx := context.Background()
	circleID := uuid.New()
	messageID := uuid.New()

	stored := &models.CircleMessage{
		ID:        messageID,
		CircleID:  circleID,
		Reactions: models.Reactions{"❤️": {"anon_1"}},
	}

	// Ожидания: повторная реакция не пишет в БД и ничего не рассылает
	membersMock.EXPECT().
		GetActiveMember(ctx, circleID, "anon_1").
		Return(activeMember(circleID, "anon_1", "Strong Heart"), nil).
		Times(1)
	messagesMock.EXPECT().GetByID(ctx, circleID, messageID).Return(stored, nil).Times(1)

	// Действие
	msg, err := service.AddReaction(ctx, circleID, messageID, "anon_1", "❤️")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []string{"anon_1"}, msg.Reactions["❤️"])
}

func TestRemoveReaction_AbsentIsNoOp(t *testing.T) {
	// Подготовка
	service, messagesMock, membersMock, _, _ := newTestMessageService(t)
	ctx := context.Background()
	circleID := uuid.New()
	messageID := uuid.New()

	stored := &models.CircleMessage{ID: messageID, CircleID: circleID, Reactions: models.Reactions{}}

	// Ожидания
	membersMock.EXPECT().
		GetActiveMember(ctx, circleID, "anon_1").
		Return(activeMember(circleID, "anon_1", "Strong Heart"), nil).
		Times(1)
	messagesMock.EXPECT().GetByID(ctx, circleID, messageID).Return(stored, nil).Times(1)

	// Действие
	_, err := service.RemoveReaction(ctx, circleID, messageID, "anon_1", "❤️")

	// Проверки
	require.NoError(t, err)
}

func TestEditMessage_Success(t *testing.T) {
	// Подготовка
	service, messagesMock, membersMock, broadcasterMock, _ := newTestMessageService(t)
	ctx := context.Background()
	circleID := uuid.New()
	messageID := uuid.New()

	stored := &models.CircleMessage{
		ID:       messageID,
		CircleID: circleID,
		SenderID: "anon_1",
		Body:     "old text",
	}

	// Ожидания
	membersMock.EXPECT().
		GetActiveMember(ctx, circleID, "anon_1").
		Return(activeMember(circleID, "anon_1", "Brave Phoenix"), nil).
		Times(1)
	messagesMock.EXPECT().GetByID(ctx, circleID, messageID).Return(stored, nil).Times(1)
	messagesMock.EXPECT().UpdateBody(ctx, messageID, "new text", gomock.Any()).Return(nil).Times(1)
	broadcasterMock.EXPECT().BroadcastMessageUpdate(circleID, gomock.Any()).Times(1)

	// Действие
	msg, err := service.EditMessage(ctx, circleID, messageID, "anon_1", "new text")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "new text", msg.Body)
	assert.True(t, msg.Edited)
	require.NotNil(t, msg.EditedAt)
}

func TestEditMessage_NotSender(t *testing.T) {
	// Подготовка
	service, messagesMock, membersMock, _, _ := newTestMessageService(t)
	ctx := context.Background()
	circleID := uuid.New()
	messageID := uuid.New()

	stored := &models.CircleMessage{ID: messageID, CircleID: circleID, SenderID: "anon_author"}

	// Ожидания
	membersMock.EXPECT().
		GetActiveMember(ctx, circleID, "anon_other").
		Return(activeMember(circleID, "anon_other", "Hopeful Spirit"), nil).
		Times(1)
	messagesMock.EXPECT().GetByID(ctx, circleID, messageID).Return(stored, nil).Times(1)

	// Действие
	msg, err := service.EditMessage(ctx, circleID, messageID, "anon_other", "hijacked")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, msg)
	assert.ErrorIs(t, err, ErrNotMessageSender)
}
