package service

import (
	"github.com/safecircle/peer_support_system/internal/config"
	"github.com/safecircle/peer_support_system/internal/models"
)

// ScoreCircle вычисляет эвристическую оценку кандидата для данного профиля.
// Чистая функция: не трогает хранилище, веса приходят из конфигурации.
func ScoreCircle(c *models.Circle, profile *models.SeekerProfile, w config.MatchWeights) float64 {
	score := 0.0

	// Круги с 2-4 участниками предпочтительнее: не пустые и не на грани заполнения
	switch {
	case c.MemberCount >= 2 && c.MemberCount <= 4:
		score += float64(w.SweetSpot)
	case c.MemberCount == 1:
		score += float64(w.LonelyMember)
	}

	score += c.AverageHelpfulnessScore * w.HelpfulnessMult

	score += float64(w.TagOverlap * tagIntersection(c.Tags, profile.Tags))

	if c.FacilitatorPresent() {
		score += float64(w.Facilitator)
	}

	return score
}

// SelectBestCircle выбирает кандидата с максимальной оценкой. При равенстве
// оценок сохраняется порядок кандидатов из запроса (стабильный выбор).
func SelectBestCircle(candidates []*models.Circle, profile *models.SeekerProfile, w config.MatchWeights) *models.Circle {
	if len(candidates) == 0 {
		return nil
	}

	best := candidates[0]
	highest := ScoreCircle(best, profile, w)

	for _, c := range candidates[1:] {
		if s := ScoreCircle(c, profile, w); s > highest {
			highest = s
			best = c
		}
	}
	return best
}

// tagIntersection возвращает размер пересечения тегов круга и профиля
func tagIntersection(circleTags, profileTags []string) int {
	if len(circleTags) == 0 || len(profileTags) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(profileTags))
	for _, t := range profileTags {
		set[t] = struct{}{}
	}
	n := 0
	for _, t := range circleTags {
		if _, ok := set[t]; ok {
			n++
		}
	}
	return n
}
