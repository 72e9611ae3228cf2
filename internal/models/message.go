package models

import (
	"time"

	"github.com/google/uuid"
)

// Reactions - отображение emoji -> множество participantId, поставивших реакцию
type Reactions map[string][]string

// Has проверяет, есть ли у участника реакция с данным emoji
func (r Reactions) Has(emoji, participantID string) bool {
	for _, id := range r[emoji] {
		if id == participantID {
			return true
		}
	}
	return false
}

// Add добавляет реакцию участника (идемпотентно)
func (r Reactions) Add(emoji, participantID string) bool {
	if r.Has(emoji, participantID) {
		return false
	}
	r[emoji] = append(r[emoji], participantID)
	return true
}

// Remove убирает реакцию участника, возвращает true если она была
func (r Reactions) Remove(emoji, participantID string) bool {
	ids := r[emoji]
	for i, id := range ids {
		if id == participantID {
			ids = append(ids[:i], ids[i+1:]...)
			if len(ids) == 0 {
				delete(r, emoji)
			} else {
				r[emoji] = ids
			}
			return true
		}
	}
	return false
}

// CircleMessage - сообщение в круге. После сохранения неизменяемо, за
// исключением реакций и явной операции редактирования.
type CircleMessage struct {
	ID                uuid.UUID  `json:"id"`
	CircleID          uuid.UUID  `json:"circle_id"`
	SenderID          string     `json:"sender_id"`
	SenderDisplayName string     `json:"sender_display_name"`
	Body              string     `json:"body"`
	ServerTimestamp   time.Time  `json:"server_timestamp"`
	RiskScore         int        `json:"risk_score"`
	Flagged           bool       `json:"flagged"`
	Reactions         Reactions  `json:"reactions"`
	Edited            bool       `json:"edited"`
	EditedAt          *time.Time `json:"edited_at,omitempty"`
}
