package ws

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/safecircle/peer_support_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Hub - in-memory реестр подключений и состояния "печатает" по кругам.
// Ничего не персистит: после рестарта процесса присутствие пусто, пока
// клиенты не переподключатся (задокументированное ограничение, не баг).
// Внедряется как зависимость конструктора, а не глобальное состояние, чтобы
// при горизонтальном масштабировании его можно было заменить распределенным
// реестром.
type Hub struct {
	logger    *logrus.Logger
	typingTTL time.Duration

	mu     sync.RWMutex
	rooms  map[uuid.UUID]map[*Client]struct{}
	typing map[uuid.UUID]map[string]*typingState
}

// typingState - взведенный таймер окна "печатает". Поколение растет при каждом
// продлении: уже сработавший, но еще не взявший мьютекс колбэк старого таймера
// видит чужое поколение и не гасит свежее окно.
type typingState struct {
	timer *time.Timer
	gen   uint64
}

func NewHub(logger *logrus.Logger, typingTTL time.Duration) *Hub {
	return &Hub{
		logger:    logger,
		typingTTL: typingTTL,
		rooms:     make(map[uuid.UUID]map[*Client]struct{}),
		typing:    make(map[uuid.UUID]map[string]*typingState),
	}
}

// Register добавляет подключение в комнату круга и рассылает событие join и
// свежий снимок присутствия
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	room, ok := h.rooms[c.circleID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[c.circleID] = room
	}
	room[c] = struct{}{}
	h.mu.Unlock()

	h.logger.WithFields(logrus.Fields{
		"circle_id":      c.circleID,
		"participant_id": c.participantID,
	}).Info("Participant connected to circle")

	if data, err := marshalEvent(EventJoin, MemberPayload{CircleID: c.circleID, ParticipantID: c.participantID}); err == nil {
		h.broadcast(c.circleID, data, "")
	}
	h.broadcastPresence(c.circleID)
}

// Unregister убирает подключение. Отключение - неявное (но не разрушающее)
// удаление присутствия: членство остается активным, участник может
// переподключиться без потери круга.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	room, ok := h.rooms[c.circleID]
	if !ok {
		h.mu.Unlock()
		return
	}
	if _, present := room[c]; !present {
		h.mu.Unlock()
		return
	}
	delete(room, c)
	c.closeSend()

	// Если это было последнее подключение участника, гасим его typing-таймер
	stillConnected := false
	for other := range room {
		if other.participantID == c.participantID {
			stillConnected = true
			break
		}
	}
	var hadTimer bool
	if !stillConnected {
		hadTimer = h.clearTypingLocked(c.circleID, c.participantID)
	}
	if len(room) == 0 {
		delete(h.rooms, c.circleID)
	}
	h.mu.Unlock()

	h.logger.WithFields(logrus.Fields{
		"circle_id":      c.circleID,
		"participant_id": c.participantID,
	}).Info("Participant disconnected from circle")

	if hadTimer {
		h.broadcastTypingStop(c.circleID, c.participantID)
	}
	if data, err := marshalEvent(EventLeave, MemberPayload{CircleID: c.circleID, ParticipantID: c.participantID}); err == nil {
		h.broadcast(c.circleID, data, "")
	}
	h.broadcastPresence(c.circleID)
}

// DisconnectParticipant отцепляет все подключения участника в круге.
// Вызывается при явном выходе из круга: присутствие, typing и доставка
// событий прекращаются сразу, не дожидаясь разрыва сокета.
func (h *Hub) DisconnectParticipant(circleID uuid.UUID, participantID string) {
	h.mu.RLock()
	var targets []*Client
	for c := range h.rooms[circleID] {
		if c.participantID == participantID {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		h.Unregister(c)
	}
}

// OnlineSnapshot возвращает текущий снимок присутствия в круге
func (h *Hub) OnlineSnapshot(circleID uuid.UUID) (int, []string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for c := range h.rooms[circleID] {
		if _, ok := seen[c.participantID]; ok {
			continue
		}
		seen[c.participantID] = struct{}{}
		ids = append(ids, c.participantID)
	}
	return len(ids), ids
}

// MarkTyping запускает или продлевает окно "печатает" участника. Событие
// typing:start уходит только остальным участникам круга, не самому печатающему.
func (h *Hub) MarkTyping(circleID uuid.UUID, participantID, displayName string) {
	h.mu.Lock()
	circleTyping, ok := h.typing[circleID]
	if !ok {
		circleTyping = make(map[string]*typingState)
		h.typing[circleID] = circleTyping
	}

	if st, already := circleTyping[participantID]; already {
		// Продление: старый таймер отменяется, взводится новое поколение
		st.timer.Stop()
		st.gen++
		gen := st.gen
		st.timer = time.AfterFunc(h.typingTTL, func() {
			h.expireTyping(circleID, participantID, gen)
		})
		h.mu.Unlock()
		return
	}

	st := &typingState{}
	circleTyping[participantID] = st
	gen := st.gen
	// Истечение окна сходится к тому же наблюдаемому состоянию, что и явный stop
	st.timer = time.AfterFunc(h.typingTTL, func() {
		h.expireTyping(circleID, participantID, gen)
	})
	h.mu.Unlock()

	if data, err := marshalEvent(EventTypingStart, TypingPayload{ParticipantID: participantID, DisplayName: displayName}); err == nil {
		h.broadcast(circleID, data, participantID)
	}
}

// StopTyping снимает состояние "печатает" (явный сигнал от клиента)
func (h *Hub) StopTyping(circleID uuid.UUID, participantID string) {
	h.mu.Lock()
	had := h.clearTypingLocked(circleID, participantID)
	h.mu.Unlock()

	if had {
		h.broadcastTypingStop(circleID, participantID)
	}
}

// expireTyping - колбэк истечения окна. Гасит запись только своего поколения:
// запоздавший колбэк после продления окна - no-op.
func (h *Hub) expireTyping(circleID uuid.UUID, participantID string, gen uint64) {
	h.mu.Lock()
	st, ok := h.typing[circleID][participantID]
	if !ok || st.gen != gen {
		h.mu.Unlock()
		return
	}
	h.clearTypingLocked(circleID, participantID)
	h.mu.Unlock()

	h.broadcastTypingStop(circleID, participantID)
}

func (h *Hub) clearTypingLocked(circleID uuid.UUID, participantID string) bool {
	circleTyping, ok := h.typing[circleID]
	if !ok {
		return false
	}
	st, ok := circleTyping[participantID]
	if !ok {
		return false
	}
	st.timer.Stop()
	delete(circleTyping, participantID)
	if len(circleTyping) == 0 {
		delete(h.typing, circleID)
	}
	return true
}

func (h *Hub) broadcastTypingStop(circleID uuid.UUID, participantID string) {
	if data, err := marshalEvent(EventTypingStop, TypingPayload{ParticipantID: participantID}); err == nil {
		h.broadcast(circleID, data, participantID)
	}
}

// BroadcastNewMessage реализует service.Broadcaster: доставка сообщения всем
// подключенным участникам круга
func (h *Hub) BroadcastNewMessage(circleID uuid.UUID, msg *models.CircleMessage) {
	data, err := marshalEvent(EventMessageNew, msg)
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal message:new event")
		return
	}
	h.broadcast(circleID, data, "")
}

// BroadcastMessageUpdate рассылает измененное сообщение (реакции, правка)
func (h *Hub) BroadcastMessageUpdate(circleID uuid.UUID, msg *models.CircleMessage) {
	data, err := marshalEvent(EventMessageUpdate, msg)
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal message:update event")
		return
	}
	h.broadcast(circleID, data, "")
}

func (h *Hub) broadcastPresence(circleID uuid.UUID) {
	count, ids := h.OnlineSnapshot(circleID)
	if data, err := marshalEvent(EventPresenceSnap, PresencePayload{Count: count, ParticipantIDs: ids}); err == nil {
		h.broadcast(circleID, data, "")
	}
}

// broadcast - fire-and-forget рассылка по комнате. Подключение с переполненным
// буфером отправки отцепляется: медленный клиент добирает историю по REST.
func (h *Hub) broadcast(circleID uuid.UUID, data []byte, exceptParticipant string) {
	h.mu.RLock()
	var slow []*Client
	for c := range h.rooms[circleID] {
		if exceptParticipant != "" && c.participantID == exceptParticipant {
			continue
		}
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.WithField("participant_id", c.participantID).Warn("Dropping slow connection")
		h.Unregister(c)
	}
}
