// Package chatclient содержит клиентскую логику слияния оптимистично
// отрисованных сообщений с авторитетным потоком сервера. Чистые функции без
// транспорта: одинаково работают поверх real-time канала и REST-добора
// истории после переподключения.
package chatclient

import "time"

// ReconcileWindow - окно, в котором авторитетное сообщение считается
// подтверждением локального эха
const ReconcileWindow = 10 * time.Second

// ChatMessage - элемент клиентского списка сообщений. У локального эха ID
// пуст и Pending=true; после персистенции сообщение несет стабильный
// идентификатор сервера.
type ChatMessage struct {
	ID                string    `json:"id,omitempty"`
	SenderID          string    `json:"sender_id"`
	SenderDisplayName string    `json:"sender_display_name"`
	Body              string    `json:"body"`
	Timestamp         time.Time `json:"timestamp"`
	Pending           bool      `json:"pending,omitempty"`
}

// NewPendingEcho создает локальное эхо для немедленной отрисовки, до
// завершения round trip
func NewPendingEcho(senderID, displayName, body string, createdAt time.Time) ChatMessage {
	return ChatMessage{
		SenderID:          senderID,
		SenderDisplayName: displayName,
		Body:              body,
		Timestamp:         createdAt,
		Pending:           true,
	}
}

// Reconcile вливает авторитетное сообщение в список без дублей:
//
//  1. сообщение с уже известным персистентным ID игнорируется (идемпотентность
//     при повторной доставке);
//  2. свое сообщение (senderID == selfID) с тем же текстом, пришедшее в
//     пределах ReconcileWindow от создания ожидающего эха, замещает это эхо
//     на месте;
//  3. иначе сообщение добавляется в конец - это покрывает потерю эха и
//     доставку вне порядка, не оставляя постоянных дублей.
//
// Вход не мутируется, возвращается новый список.
func Reconcile(list []ChatMessage, incoming ChatMessage, selfID string) []ChatMessage {
	if incoming.ID != "" {
		for _, m := range list {
			if m.ID == incoming.ID {
				return list
			}
		}
	}

	if incoming.SenderID == selfID {
		for i, m := range list {
			if !m.Pending || m.SenderID != incoming.SenderID || m.Body != incoming.Body {
				continue
			}
			if absDuration(incoming.Timestamp.Sub(m.Timestamp)) > ReconcileWindow {
				continue
			}
			out := make([]ChatMessage, len(list))
			copy(out, list)
			incoming.Pending = false
			out[i] = incoming
			return out
		}
	}

	out := make([]ChatMessage, len(list), len(list)+1)
	copy(out, list)
	incoming.Pending = false
	return append(out, incoming)
}

// Catchup применяет добранную по REST историю к списку (например, после
// переподключения с before=<последняя известная метка>)
func Catchup(list []ChatMessage, history []ChatMessage, selfID string) []ChatMessage {
	for _, m := range history {
		list = Reconcile(list, m, selfID)
	}
	return list
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
