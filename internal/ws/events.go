package ws

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/safecircle/peer_support_system/internal/models"
)

// Типы событий real-time канала. Клиент шлет message:send и typing:*,
// сервер рассылает остальные.
const (
	EventJoin          = "join"
	EventLeave         = "leave"
	EventMessageSend   = "message:send"
	EventMessageNew    = "message:new"
	EventMessageUpdate = "message:update"
	EventTypingStart   = "typing:start"
	EventTypingStop    = "typing:stop"
	EventPresenceSnap  = "presence:snapshot"
	EventError         = "error"
)

// Event - конверт события real-time канала
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// MessageSendPayload - входящий запрос на отправку сообщения
type MessageSendPayload struct {
	Body string `json:"body"`
}

// MemberPayload - данные событий join/leave
type MemberPayload struct {
	CircleID      uuid.UUID `json:"circle_id"`
	ParticipantID string    `json:"participant_id"`
}

// TypingPayload - данные событий typing:start/typing:stop
type TypingPayload struct {
	ParticipantID string `json:"participant_id"`
	DisplayName   string `json:"display_name,omitempty"`
}

// PresencePayload - снимок присутствия в круге
type PresencePayload struct {
	Count          int      `json:"count"`
	ParticipantIDs []string `json:"participant_ids"`
}

// ErrorPayload - ошибка, доставляемая клиенту по каналу
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessagePayload - сообщение круга в канале
type MessagePayload = models.CircleMessage

func marshalEvent(eventType string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	raw, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}
	return raw, nil
}
