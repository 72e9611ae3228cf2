package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand/v2"

	"github.com/safecircle/peer_support_system/internal/models"
)

// Таблица осмысленных названий кругов по типу инцидента
var circleNamesByType = map[string]string{
	"online_harassment":        "Online Safety Circle",
	"workplace_discrimination": "Workplace Support Circle",
	"dating_app_harassment":    "Dating Safety Circle",
	"cyberbullying":            "Cyber Safety Circle",
	"stalking":                 "Safety & Security Circle",
	"general":                  "Support Circle",
}

const fallbackCircleName = "Support Circle"

// Словари для генерации анонимных псевдонимов. Реальная личность участника
// никогда не раскрывается.
var (
	pseudonymAdjectives = []string{"Brave", "Strong", "Resilient", "Courageous", "Hopeful", "Empowered"}
	pseudonymNouns      = []string{"Survivor", "Warrior", "Phoenix", "Spirit", "Voice", "Heart"}
)

// GenerateCircleName детерминированно собирает название круга из типа
// инцидента и региона, с generic-запасным вариантом
func GenerateCircleName(profile *models.SeekerProfile) string {
	base, ok := circleNamesByType[profile.IncidentType]
	if !ok {
		base = fallbackCircleName
	}
	return fmt.Sprintf("%s - %s", base, profile.LocationRegion)
}

// GenerateCircleDescription синтезирует описание круга из тех же полей
func GenerateCircleDescription(profile *models.SeekerProfile) string {
	return fmt.Sprintf("Safe space for survivors of %s in %s", profile.IncidentType, profile.LocationRegion)
}

// GeneratePseudonym составляет псевдоним вида "Brave Phoenix"
func GeneratePseudonym() string {
	adj := pseudonymAdjectives[mrand.IntN(len(pseudonymAdjectives))]
	noun := pseudonymNouns[mrand.IntN(len(pseudonymNouns))]
	return fmt.Sprintf("%s %s", adj, noun)
}

// MintParticipantID выдает свежий непредсказуемый анонимный идентификатор
func MintParticipantID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate participant id: %w", err)
	}
	return "anon_" + hex.EncodeToString(buf), nil
}
