// Package gemini реализует опционального коллаборатора семантического подбора
// поверх Gemini API. Его отсутствие или сбой никогда не влияет на корректность
// подбора, только (возможно) на качество.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/safecircle/peer_support_system/internal/config"
	"github.com/safecircle/peer_support_system/internal/models"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// createNewSignal - ответ модели, означающий "подходящего круга нет"
const createNewSignal = "CREATE_NEW"

type Matcher struct {
	client *genai.Client
	model  string
	logger *logrus.Logger
}

// NewMatcher создает клиента Gemini для семантического подбора
func NewMatcher(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Matcher, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	logger.WithField("model", cfg.GeminiModel).Info("Gemini semantic matcher initialized")
	return &Matcher{
		client: client,
		model:  cfg.GeminiModel,
		logger: logger,
	}, nil
}

// SuggestBestCandidate просит модель выбрать лучший круг из кандидатов.
// ok=false без ошибки означает "подходящего нет, создать новый". Таймаут
// приходит через ctx от вызывающего.
func (m *Matcher) SuggestBestCandidate(ctx context.Context, candidates []*models.Circle, profile *models.SeekerProfile) (uuid.UUID, bool, error) {
	prompt := buildPrompt(candidates, profile)

	resp, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), nil)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("gemini generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return uuid.Nil, false, fmt.Errorf("gemini returned empty response")
	}

	if strings.Contains(text, createNewSignal) {
		return uuid.Nil, false, nil
	}

	for _, c := range candidates {
		if strings.Contains(text, c.ID.String()) {
			return c.ID, true, nil
		}
	}

	// Модель не назвала ни одного кандидата - неоднозначный ответ
	return uuid.Nil, false, fmt.Errorf("gemini response does not reference a candidate: %q", text)
}

func buildPrompt(candidates []*models.Circle, profile *models.SeekerProfile) string {
	var sb strings.Builder

	sb.WriteString("You are an AI matching system for a peer support network.\n\n")
	sb.WriteString("Given this survivor profile:\n")
	fmt.Fprintf(&sb, "- Incident Type: %s\n", profile.IncidentType)
	fmt.Fprintf(&sb, "- Location: %s\n", profile.LocationRegion)
	fmt.Fprintf(&sb, "- Language: %s\n", profile.Language)
	if profile.AgeRange != "" {
		fmt.Fprintf(&sb, "- Age Range: %s\n", profile.AgeRange)
	}
	if len(profile.Tags) > 0 {
		fmt.Fprintf(&sb, "- Tags: %s\n", strings.Join(profile.Tags, ", "))
	}

	sb.WriteString("\nAnd these available support circles:\n")
	for _, c := range candidates {
		fmt.Fprintf(&sb, "- id: %s, name: %q, members: %d/%d, helpfulness: %.1f, tags: [%s]\n",
			c.ID, c.Name, c.MemberCount, c.MaxMembers, c.AverageHelpfulnessScore, strings.Join(c.Tags, ", "))
	}

	sb.WriteString("\nWhich circle id would provide the BEST emotional support match? Consider:\n")
	sb.WriteString("1. Similar experiences (incident type match)\n")
	sb.WriteString("2. Geographic proximity (same region preferred)\n")
	sb.WriteString("3. Group size (2-4 members is ideal, not too small or full)\n")
	sb.WriteString("4. Community quality (higher helpfulness score is better)\n")
	sb.WriteString("5. Language compatibility\n\n")
	sb.WriteString("Respond ONLY with the circle id that is the best match. ")
	fmt.Fprintf(&sb, "If no good match exists, respond with %q.", createNewSignal)

	return sb.String()
}
