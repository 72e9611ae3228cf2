package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/safecircle/peer_support_system/internal/models"
)

// MatchRequest DTO для подбора круга поддержки
// @Description DTO для подбора круга поддержки
type MatchRequest struct {
	IncidentType   string   `json:"incident_type" validate:"required,min=2,max=100"`
	LocationRegion string   `json:"location_region" validate:"required,min=2,max=100"`
	Language       string   `json:"language,omitempty"`
	AgeRange       string   `json:"age_range,omitempty"`
	Severity       string   `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Tags           []string `json:"tags,omitempty"`
	DisplayName    string   `json:"display_name,omitempty" validate:"omitempty,max=100"`
	ReportID       string   `json:"report_id,omitempty"`
	ParticipantID  string   `json:"participant_id,omitempty"`
}

// CircleResponse DTO для ответа с информацией о круге
// @Description DTO для ответа с информацией о круге
type CircleResponse struct {
	ID                      uuid.UUID `json:"id"`
	Name                    string    `json:"name"`
	Description             string    `json:"description,omitempty"`
	IncidentType            string    `json:"incident_type"`
	LocationRegion          string    `json:"location_region"`
	Language                string    `json:"language"`
	MemberCount             int       `json:"member_count"`
	MaxMembers              int       `json:"max_members"`
	Tags                    []string  `json:"tags,omitempty"`
	AverageHelpfulnessScore float64   `json:"average_helpfulness_score"`
	CreatedAt               time.Time `json:"created_at"`
}

// MemberResponse DTO для ответа с информацией об участнике
// @Description DTO для ответа с информацией об участнике
type MemberResponse struct {
	ParticipantID    string    `json:"participant_id"`
	DisplayName      string    `json:"display_name"`
	JoinedAt         time.Time `json:"joined_at"`
	MessageCount     int       `json:"message_count"`
	HelpfulnessScore float64   `json:"helpfulness_score"`
}

// MatchResponse DTO для результата подбора
// @Description DTO для результата подбора
type MatchResponse struct {
	Circle      CircleResponse `json:"circle"`
	Member      MemberResponse `json:"member"`
	MatchReason string         `json:"match_reason"`
	IsNewCircle bool           `json:"is_new_circle"`
}

// CircleDetailResponse DTO для круга со списком активных участников
// @Description DTO для круга со списком активных участников
type CircleDetailResponse struct {
	Circle  CircleResponse   `json:"circle"`
	Members []MemberResponse `json:"members"`
	Online  int              `json:"online"`
}

// SendMessageRequest DTO для отправки сообщения через HTTP fallback
// @Description DTO для отправки сообщения через HTTP fallback
type SendMessageRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
	Body          string `json:"body" validate:"required"`
}

// EditMessageRequest DTO для редактирования сообщения
// @Description DTO для редактирования сообщения
type EditMessageRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
	Body          string `json:"body" validate:"required"`
}

// ReactionRequest DTO для добавления реакции
// @Description DTO для добавления реакции
type ReactionRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
	Emoji         string `json:"emoji" validate:"required,max=16"`
}

// LeaveRequest DTO для выхода из круга
// @Description DTO для выхода из круга
type LeaveRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
}

// MessageResponse DTO для ответа с сообщением круга
// @Description DTO для ответа с сообщением круга
type MessageResponse struct {
	ID                uuid.UUID        `json:"id"`
	CircleID          uuid.UUID        `json:"circle_id"`
	SenderID          string           `json:"sender_id"`
	SenderDisplayName string           `json:"sender_display_name"`
	Body              string           `json:"body"`
	ServerTimestamp   time.Time        `json:"server_timestamp"`
	Reactions         models.Reactions `json:"reactions"`
	Edited            bool             `json:"edited"`
	EditedAt          *time.Time       `json:"edited_at,omitempty"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	TotalCircles  int                        `json:"total_circles"`
	TotalMembers  int                        `json:"total_members"`
	TotalMessages int                        `json:"total_messages"`
	CirclesByType []models.IncidentTypeCount `json:"circles_by_type"`
}
