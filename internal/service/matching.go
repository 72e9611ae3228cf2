package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/safecircle/peer_support_system/internal/badge"
	"github.com/safecircle/peer_support_system/internal/config"
	"github.com/safecircle/peer_support_system/internal/models"
	"github.com/sirupsen/logrus"
)

// MatchingService определяет контракт движка подбора кругов
type MatchingService interface {
	FindOrCreateCircle(ctx context.Context, profile *models.SeekerProfile) (*models.MatchResult, error)
}

type matchingService struct {
	circles CircleRepository
	members MemberRepository
	matcher SemanticMatcher // nil, если обогащение не сконфигурировано
	badges  badge.Publisher
	logger  *logrus.Logger
	cfg     *config.Config
}

func NewMatchingService(
	circles CircleRepository,
	members MemberRepository,
	matcher SemanticMatcher,
	badges badge.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) MatchingService {
	return &matchingService{
		circles: circles,
		members: members,
		matcher: matcher,
		badges:  badges,
		logger:  logger,
		cfg:     cfg,
	}
}

// FindOrCreateCircle подбирает существующий круг со свободным местом или
// создает новый, после чего атомарно регистрирует участника. Если кандидат
// заполнился между запросом и вступлением, подбор перезапускается с нуля.
func (s *matchingService) FindOrCreateCircle(ctx context.Context, profile *models.SeekerProfile) (*models.MatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "matching",
		"method":        "FindOrCreateCircle",
		"incident_type": profile.IncidentType,
		"region":        profile.LocationRegion,
	})

	if strings.TrimSpace(profile.IncidentType) == "" || strings.TrimSpace(profile.LocationRegion) == "" {
		return nil, fmt.Errorf("incidentType and locationRegion are required: %w", ErrValidation)
	}
	if profile.Language == "" {
		profile.Language = "english"
	}

	log.Info("Attempting to match seeker to a circle")

	for attempt := 0; attempt <= s.cfg.MatchMaxRetries; attempt++ {
		candidates, err := s.circles.FindCandidates(ctx, profile.IncidentType, profile.LocationRegion, profile.Language, s.cfg.MatchCandidateCap)
		if err != nil {
			log.WithError(err).Error("Failed to query candidate circles")
			return nil, fmt.Errorf("service: could not find candidate circles: %w", err)
		}

		if len(candidates) == 0 {
			return s.createAndJoin(ctx, profile, log)
		}

		best := SelectBestCircle(candidates, profile, s.cfg.MatchWeights)

		// Опциональное семантическое обогащение: может переопределить выбор
		// или сигнализировать "подходящих нет". Любой сбой молча откатывает
		// к эвристическому выбору и никогда не блокирует подбор.
		if s.matcher != nil && len(candidates) > 1 {
			var createNew bool
			best, createNew = s.enrichSelection(ctx, candidates, profile, best, log)
			if createNew {
				return s.createAndJoin(ctx, profile, log)
			}
		}

		// Повторное вступление в тот же круг при активном членстве - no-op
		if profile.ParticipantID != "" {
			existing, err := s.members.GetActiveMember(ctx, best.ID, profile.ParticipantID)
			if err != nil {
				return nil, fmt.Errorf("service: could not check existing membership: %w", err)
			}
			if existing != nil {
				log.WithField("circle_id", best.ID).Info("Seeker already an active member, returning existing membership")
				return &models.MatchResult{
					Circle:      best,
					Member:      existing,
					MatchReason: s.matchReason(best, profile),
					IsNewCircle: false,
				}, nil
			}
		}

		reason := s.matchReason(best, profile)

		member, err := s.join(ctx, best.ID, profile)
		if err != nil {
			if errors.Is(err, ErrCapacityExceeded) || errors.Is(err, ErrCircleNotFound) {
				// Кандидат заполнился или был деактивирован между запросом и
				// вступлением - перезапускаем подбор
				log.WithField("circle_id", best.ID).WithField("attempt", attempt).
					Info("Candidate circle filled up concurrently, rematching")
				continue
			}
			log.WithError(err).Error("Failed to join matched circle")
			return nil, err
		}

		best.MemberCount++ // включая нового участника
		log.WithField("circle_id", best.ID).Info("Seeker matched to existing circle")
		return &models.MatchResult{
			Circle:      best,
			Member:      member,
			MatchReason: reason,
			IsNewCircle: false,
		}, nil
	}

	return nil, fmt.Errorf("service: no circle with free capacity after %d attempts: %w", s.cfg.MatchMaxRetries+1, ErrCapacityExceeded)
}

// createAndJoin создает новый круг и регистрирует в нем искателя первым участником
func (s *matchingService) createAndJoin(ctx context.Context, profile *models.SeekerProfile, log *logrus.Entry) (*models.MatchResult, error) {
	// Профиль без тегов дает пустой массив, а не NULL: колонка tags - NOT NULL
	tags := profile.Tags
	if tags == nil {
		tags = []string{}
	}

	circle := &models.Circle{
		ID:             uuid.New(),
		Name:           GenerateCircleName(profile),
		Description:    GenerateCircleDescription(profile),
		IncidentType:   profile.IncidentType,
		LocationRegion: profile.LocationRegion,
		Language:       profile.Language,
		MaxMembers:     s.cfg.CircleMaxMembers,
		Tags:           tags,
		IsActive:       true,
	}

	if err := s.circles.Create(ctx, circle); err != nil {
		log.WithError(err).Error("Failed to create new circle")
		return nil, fmt.Errorf("service: could not create circle: %w", err)
	}

	member, err := s.join(ctx, circle.ID, profile)
	if err != nil {
		log.WithError(err).Error("Failed to join freshly created circle")
		return nil, err
	}

	circle.MemberCount = 1
	log.WithField("circle_id", circle.ID).Info("Created new circle for seeker")
	return &models.MatchResult{
		Circle:      circle,
		Member:      member,
		MatchReason: "Created a new support circle for you with similar experiences",
		IsNewCircle: true,
	}, nil
}

// join атомарно регистрирует участника: проверка вместимости и инкремент
// счетчика происходят одной условной операцией в хранилище
func (s *matchingService) join(ctx context.Context, circleID uuid.UUID, profile *models.SeekerProfile) (*models.CircleMember, error) {
	participantID, err := MintParticipantID()
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	displayName := profile.DisplayName
	if displayName == "" {
		displayName = GeneratePseudonym()
	}

	member := &models.CircleMember{
		CircleID:      circleID,
		ParticipantID: participantID,
		DisplayName:   displayName,
		IsActive:      true,
	}
	if profile.ReportID != "" {
		member.ReportID = &profile.ReportID
	}

	if err := s.circles.JoinCircle(ctx, circleID, member); err != nil {
		return nil, err
	}

	if err := s.circles.InvalidateCircleCache(ctx, circleID); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate circle cache after join")
	}

	// Уведомление коллаборатора бейджей - побочный эффект, сбой не влияет на вступление
	if err := s.badges.Publish(ctx, badge.Event{
		Type:          badge.EventMemberJoined,
		CircleID:      circleID,
		ParticipantID: participantID,
		Timestamp:     time.Now().UTC(),
	}); err != nil {
		s.logger.WithError(err).Warn("Failed to publish member_joined badge event")
	}

	return member, nil
}

// enrichSelection консультируется с внешним семантическим коллаборатором.
// Возвращает (кандидат, false) либо (nil, true), если коллаборатор считает,
// что подходящего круга нет.
func (s *matchingService) enrichSelection(ctx context.Context, candidates []*models.Circle, profile *models.SeekerProfile, fallback *models.Circle, log *logrus.Entry) (*models.Circle, bool) {
	aiCtx, cancel := context.WithTimeout(ctx, s.cfg.GeminiTimeout)
	defer cancel()

	id, ok, err := s.matcher.SuggestBestCandidate(aiCtx, candidates, profile)
	if err != nil {
		log.WithError(err).Debug("Semantic matcher failed, falling back to rule-based selection")
		return fallback, false
	}
	if !ok {
		log.Debug("Semantic matcher suggests creating a new circle")
		return nil, true
	}

	for _, c := range candidates {
		if c.ID == id {
			log.WithField("circle_id", id).Debug("Semantic matcher overrode rule-based selection")
			return c, false
		}
	}

	// Коллаборатор вернул id вне списка кандидатов - трактуем как неоднозначный ответ
	log.WithField("circle_id", id).Debug("Semantic matcher returned unknown candidate, falling back")
	return fallback, false
}

// matchReason собирает человекочитаемое объяснение выбора круга
func (s *matchingService) matchReason(c *models.Circle, profile *models.SeekerProfile) string {
	reasons := []string{
		fmt.Sprintf("%d members with similar experiences", c.MemberCount),
	}
	if c.LocationRegion == profile.LocationRegion {
		reasons = append(reasons, fmt.Sprintf("based in %s", profile.LocationRegion))
	}
	if c.AverageHelpfulnessScore > 3 {
		reasons = append(reasons, "highly rated for support")
	}
	return fmt.Sprintf("Matched to %s: %s", c.Name, strings.Join(reasons, ", "))
}
