package service

import "strings"

// Простейший синхронный скоринг риска по ключевым словам. Опасные слова
// весят больше, чем слова-маркеры тревоги; итог ограничен диапазоном [0,10].
var (
	dangerKeywords  = []string{"kill", "hurt", "harm", "suicide", "die"}
	concernKeywords = []string{"scared", "afraid", "danger", "threat", "myself"}
)

const (
	dangerKeywordWeight  = 3
	concernKeywordWeight = 1
	maxRiskScore         = 10

	// FlagThreshold - сообщение помечается, если riskScore строго больше порога
	FlagThreshold = 7
)

// ScoreMessageRisk возвращает оценку риска текста сообщения в [0,10]
func ScoreMessageRisk(body string) int {
	lower := strings.ToLower(body)

	score := 0
	for _, word := range dangerKeywords {
		if strings.Contains(lower, word) {
			score += dangerKeywordWeight
		}
	}
	for _, word := range concernKeywords {
		if strings.Contains(lower, word) {
			score += concernKeywordWeight
		}
	}

	if score > maxRiskScore {
		score = maxRiskScore
	}
	return score
}
