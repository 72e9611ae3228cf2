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

// newTestMatchingService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestMatchingService(t *testing.T) (*matchingService, *mocks.MockCircleRepository, *mocks.MockMemberRepository, *badge_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	circlesMock := mocks.NewMockCircleRepository(ctrl)
	membersMock := mocks.NewMockMemberRepository(ctrl)
	badgesMock := badge_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		MatchWeights: config.MatchWeights{
			SweetSpot:       30,
			LonelyMember:    20,
			TagOverlap:      10,
			Facilitator:     15,
			HelpfulnessMult: 5,
		},
		MatchMaxRetries:   3,
		CircleMaxMembers:  5,
		MatchCandidateCap: 5,
		GeminiTimeout:     time.Second,
	}

	service := NewMatchingService(circlesMock, membersMock, nil, badgesMock, logger, cfg)
	return service.(*matchingService), circlesMock, membersMock, badgesMock
}

func TestFindOrCreateCircle_CreatesNewWhenNoCandidates(t *testing.T) {
	// Подготовка
	service, circlesMock, _, badgesMock := newTestMatchingService(t)
	ctx := context.Background()
	profile := &models.SeekerProfile{
		IncidentType:   "online_harassment",
		LocationRegion: "California",
		Tags:           []string{"anxiety"},
	}

	// Ожидания
	circlesMock.EXPECT().
		FindCandidates(ctx, "online_harassment", "California", "english", 5).
		Return(nil, nil).
		Times(1)

	circlesMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(ctx context.Context, c *models.Circle) {
			assert.Equal(t, "Online Safety Circle - California", c.Name)
			assert.Equal(t, "Safe space for survivors of online_harassment in California", c.Description)
			assert.Equal(t, 5, c.MaxMembers)
			assert.True(t, c.IsActive)
		}).Return(nil).Times(1)

	circlesMock.EXPECT().
		JoinCircle(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, circleID uuid.UUID, member *models.CircleMember) error {
			// Симулируем присвоение БД
			member.ID = 1
			member.JoinedAt = time.Now()
			assert.True(t, strings.HasPrefix(member.ParticipantID, "anon_"))
			assert.NotEmpty(t, member.DisplayName)
			return nil
		}).Times(1)

	circlesMock.EXPECT().InvalidateCircleCache(ctx, gomock.Any()).Return(nil).Times(1)

	badgesMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event badge.Event) {
			assert.Equal(t, badge.EventMemberJoined, event.Type)
		}).Return(nil).Times(1)

	// Действие
	result, err := service.FindOrCreateCircle(ctx, profile)

	// Проверки
	require.NoError(t, err)
	assert.True(t, result.IsNewCircle)
	assert.Equal(t, 1, result.Circle.MemberCount)
	assert.Contains(t, result.MatchReason, "new support circle")
}

func TestFindOrCreateCircle_NoTagsCreatesCircleWithEmptyTags(t *testing.T) {
	// Подготовка
	service, circlesMock, _, badgesMock := newTestMatchingService(t)
	ctx := context.Background()
	// Минимальный профиль без тегов - самый частый случай
	profile := &models.SeekerProfile{
		IncidentType:   "stalking",
		LocationRegion: "Texas",
	}

	// Ожидания: круг создается с пустым массивом тегов, не с nil
	circlesMock.EXPECT().
		FindCandidates(ctx, "stalking", "Texas", "english", 5).
		Return(nil, nil).
		Times(1)

	circlesMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(ctx context.Context, c *models.Circle) {
			require.NotNil(t, c.Tags)
			assert.Empty(t, c.Tags)
		}).Return(nil).Times(1)

	circlesMock.EXPECT().JoinCircle(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)
	circlesMock.EXPECT().InvalidateCircleCache(ctx, gomock.Any()).Return(nil).Times(1)
	badgesMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	result, err := service.FindOrCreateCircle(ctx, profile)

	// Проверки
	require.NoError(t, err)
	assert.True(t, result.IsNewCircle)
	assert.NotNil(t, result.Circle.Tags)
}

func TestFindOrCreateCircle_JoinsBestCandidate(t *testing.T) {
	// Подготовка
	service, circlesMock, _, badgesMock := newTestMatchingService(t)
	ctx := context.Background()
	profile := &models.SeekerProfile{
		IncidentType:   "cyberbullying",
		LocationRegion: "Oregon",
		Language:       "english",
	}

	lonely := &models.Circle{ID: uuid.New(), Name: "Cyber Safety Circle - Oregon", LocationRegion: "Oregon", MemberCount: 1, MaxMembers: 5}
	sweet := &models.Circle{ID: uuid.New(), Name: "Cyber Safety Circle - Oregon", LocationRegion: "Oregon", MemberCount: 3, MaxMembers: 5, AverageHelpfulnessScore: 4.5}

	// Ожидания
	circlesMock.EXPECT().
		FindCandidates(ctx, "cyberbullying", "Oregon", "english", 5).
		Return([]*models.Circle{lonely, sweet}, nil).
		Times(1)

	circlesMock.EXPECT().JoinCircle(ctx, sweet.ID, gomock.Any()).Return(nil).Times(1)
	circlesMock.EXPECT().InvalidateCircleCache(ctx, sweet.ID).Return(nil).Times(1)
	badgesMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	result, err := service.FindOrCreateCircle(ctx, profile)

	// Проверки
	require.NoError(t, err)
	assert.False(t, result.IsNewCircle)
	assert.Equal(t, sweet.ID, result.Circle.ID)
	assert.Equal(t, 4, result.Circle.MemberCount) // включая нового участника
	// Причина считается по состоянию до вступления
	assert.Contains(t, result.MatchReason, "Matched to Cyber Safety Circle - Oregon")
	assert.Contains(t, result.MatchReason, "3 members with similar experiences")
	assert.Contains(t, result.MatchReason, "based in Oregon")
	assert.Contains(t, result.MatchReason, "highly rated for support")
}

func TestFindOrCreateCircle_RematchesWhenCandidateFills(t *testing.T) {
	// Подготовка
	service, circlesMock, _, badgesMock := newTestMatchingService(t)
	ctx := context.Background()
	profile := &models.SeekerProfile{IncidentType: "stalking", LocationRegion: "Texas"}

	almostFull := &models.Circle{ID: uuid.New(), Name: "Safety & Security Circle - Texas", LocationRegion: "Texas", MemberCount: 4, MaxMembers: 5}

	// Ожидания
	// Первая попытка: кандидат заполняется между запросом и вступлением
	first := circlesMock.EXPECT().
		FindCandidates(ctx, "stalking", "Texas", "english", 5).
		Return([]*models.Circle{almostFull}, nil)
	circlesMock.EXPECT().JoinCircle(ctx, almostFull.ID, gomock.Any()).Return(ErrCapacityExceeded).Times(1)

	// Вторая попытка: свободных кандидатов не осталось, создаем новый круг
	circlesMock.EXPECT().
		FindCandidates(ctx, "stalking", "Texas", "english", 5).
		Return(nil, nil).
		After(first)
	circlesMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	circlesMock.EXPECT().JoinCircle(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)
	circlesMock.EXPECT().InvalidateCircleCache(ctx, gomock.Any()).Return(nil).Times(1)
	badgesMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	result, err := service.FindOrCreateCircle(ctx, profile)

	// Проверки
	require.NoError(t, err)
	assert.True(t, result.IsNewCircle)
}

func TestFindOrCreateCircle_CapacityExhaustedAfterRetries(t *testing.T) {
	// Подготовка
	service, circlesMock, _, _ := newTestMatchingService(t)
	ctx := context.Background()
	profile := &models.SeekerProfile{IncidentType: "stalking", LocationRegion: "Texas"}

	contested := &models.Circle{ID: uuid.New(), MemberCount: 4, MaxMembers: 5}

	// Ожидания: каждый раунд кандидат успевает заполниться
	attempts := service.cfg.MatchMaxRetries + 1
	circlesMock.EXPECT().
		FindCandidates(ctx, "stalking", "Texas", "english", 5).
		Return([]*models.Circle{contested}, nil).
		Times(attempts)
	circlesMock.EXPECT().
		JoinCircle(ctx, contested.ID, gomock.Any()).
		Return(ErrCapacityExceeded).
		Times(attempts)

	// Действие
	result, err := service.FindOrCreateCircle(ctx, profile)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestFindOrCreateCircle_RejoinIsNoOp(t *testing.T) {
	// Подготовка
	service, circlesMock, membersMock, _ := newTestMatchingService(t)
	ctx := context.Background()
	profile := &models.SeekerProfile{
		IncidentType:   "online_harassment",
		LocationRegion: "California",
		ParticipantID:  "anon_existing",
	}

	circle := &models.Circle{ID: uuid.New(), Name: "Online Safety Circle - California", LocationRegion: "California", MemberCount: 3, MaxMembers: 5}
	existing := &models.CircleMember{CircleID: circle.ID, ParticipantID: "anon_existing", DisplayName: "Brave Phoenix", IsActive: true}

	// Ожидания: повторное вступление не трогает счетчики и не создает членство
	circlesMock.EXPECT().
		FindCandidates(ctx, "online_harassment", "California", "english", 5).
		Return([]*models.Circle{circle}, nil).
		Times(1)
	membersMock.EXPECT().
		GetActiveMember(ctx, circle.ID, "anon_existing").
		Return(existing, nil).
		Times(1)

	// Действие
	result, err := service.FindOrCreateCircle(ctx, profile)

	// Проверки
	require.NoError(t, err)
	assert.False(t, result.IsNewCircle)
	assert.Equal(t, existing, result.Member)
	assert.Equal(t, 3, result.Circle.MemberCount)
}

func TestFindOrCreateCircle_ValidationError(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestMatchingService(t)
	ctx := context.Background()

	// Действие
	result, err := service.FindOrCreateCircle(ctx, &models.SeekerProfile{IncidentType: "  ", LocationRegion: "Texas"})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFindOrCreateCircle_SemanticMatcherSuggestsNewCircle(t *testing.T) {
	// Подготовка
	service, circlesMock, _, badgesMock := newTestMatchingService(t)
	ctrl := gomock.NewController(t)
	matcherMock := mocks.NewMockSemanticMatcher(ctrl)
	service.matcher = matcherMock

	ctx := context.Background()
	profile := &models.SeekerProfile{IncidentType: "general", LocationRegion: "Nevada"}

	a := &models.Circle{ID: uuid.New(), MemberCount: 2, MaxMembers: 5}
	b := &models.Circle{ID: uuid.New(), MemberCount: 3, MaxMembers: 5}

	// Ожидания
	circlesMock.EXPECT().
		FindCandidates(ctx, "general", "Nevada", "english", 5).
		Return([]*models.Circle{a, b}, nil).
		Times(1)
	matcherMock.EXPECT().
		SuggestBestCandidate(gomock.Any(), []*models.Circle{a, b}, profile).
		Return(uuid.Nil, false, nil).
		Times(1)
	circlesMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	circlesMock.EXPECT().JoinCircle(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)
	circlesMock.EXPECT().InvalidateCircleCache(ctx, gomock.Any()).Return(nil).Times(1)
	badgesMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	result, err := service.FindOrCreateCircle(ctx, profile)

	// Проверки
	require.NoError(t, err)
	assert.True(t, result.IsNewCircle)
}

func TestFindOrCreateCircle_SemanticMatcherFailureFallsBack(t *testing.T) {
	// Подготовка
	service, circlesMock, _, badgesMock := newTestMatchingService(t)
	ctrl := gomock.NewController(t)
	matcherMock := mocks.NewMockSemanticMatcher(ctrl)
	service.matcher = matcherMock

	ctx := context.Background()
	profile := &models.SeekerProfile{IncidentType: "general", LocationRegion: "Nevada"}

	a := &models.Circle{ID: uuid.New(), MemberCount: 1, MaxMembers: 5}
	b := &models.Circle{ID: uuid.New(), MemberCount: 3, MaxMembers: 5}

	// Ожидания: сбой коллаборатора не блокирует подбор, выбирается эвристический кандидат
	circlesMock.EXPECT().
		FindCandidates(ctx, "general", "Nevada", "english", 5).
		Return([]*models.Circle{a, b}, nil).
		Times(1)
	matcherMock.EXPECT().
		SuggestBestCandidate(gomock.Any(), gomock.Any(), profile).
		Return(uuid.Nil, false, context.DeadlineExceeded).
		Times(1)
	circlesMock.EXPECT().JoinCircle(ctx, b.ID, gomock.Any()).Return(nil).Times(1)
	circlesMock.EXPECT().InvalidateCircleCache(ctx, b.ID).Return(nil).Times(1)
	badgesMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	result, err := service.FindOrCreateCircle(ctx, profile)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, b.ID, result.Circle.ID)
}

func TestFindOrCreateCircle_BadgeFailureDoesNotBlockJoin(t *testing.T) {
	// Подготовка
	service, circlesMock, _, badgesMock := newTestMatchingService(t)
	ctx := context.Background()
	profile := &models.SeekerProfile{IncidentType: "general", LocationRegion: "Nevada"}

	circle := &models.Circle{ID: uuid.New(), Name: "Support Circle - Nevada", LocationRegion: "Nevada", MemberCount: 2, MaxMembers: 5}

	// Ожидания: сбой публикации события бейджа - только warning
	circlesMock.EXPECT().
		FindCandidates(ctx, "general", "Nevada", "english", 5).
		Return([]*models.Circle{circle}, nil).
		Times(1)
	circlesMock.EXPECT().JoinCircle(ctx, circle.ID, gomock.Any()).Return(nil).Times(1)
	circlesMock.EXPECT().InvalidateCircleCache(ctx, circle.ID).Return(nil).Times(1)
	badgesMock.EXPECT().Publish(ctx, gomock.Any()).Return(assert.AnError).Times(1)

	// Действие
	result, err := service.FindOrCreateCircle(ctx, profile)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, circle.ID, result.Circle.ID)
}
