package models

import (
	"time"

	"github.com/google/uuid"
)

// CircleMember представляет анонимное членство участника в круге поддержки.
// ParticipantID выдается при вступлении и никогда не переиспользуется.
type CircleMember struct {
	ID                         int64     `json:"id"`
	CircleID                   uuid.UUID `json:"circle_id"`
	ParticipantID              string    `json:"participant_id"`
	DisplayName                string    `json:"display_name"`
	ReportID                   *string   `json:"report_id,omitempty"`
	JoinedAt                   time.Time `json:"joined_at"`
	LastActiveAt               time.Time `json:"last_active_at"`
	IsActive                   bool      `json:"is_active"`
	MessageCount               int       `json:"message_count"`
	HelpfulnessScore           float64   `json:"helpfulness_score"`
	ReceivedHelpfulnessRatings int       `json:"received_helpfulness_ratings"`
}
