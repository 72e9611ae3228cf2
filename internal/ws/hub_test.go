package ws

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/safecircle/peer_support_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(typingTTL time.Duration) *Hub {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewHub(logger, typingTTL)
}

// newTestClient собирает клиента без реального websocket-подключения: хаб
// взаимодействует с ним только через канал send
func newTestClient(hub *Hub, circleID uuid.UUID, participantID, displayName string) *Client {
	return &Client{
		hub:           hub,
		send:          make(chan []byte, 16),
		circleID:      circleID,
		participantID: participantID,
		displayName:   displayName,
	}
}

// drainEvents вычитывает все накопившиеся события клиента
func drainEvents(c *Client) {
	for {
		select {
		case <-c.send:
		default:
			return
		}
	}
}

// nextEvent ждет следующее событие клиента с таймаутом
func nextEvent(t *testing.T, c *Client, timeout time.Duration) Event {
	t.Helper()
	select {
	case raw, ok := <-c.send:
		require.True(t, ok, "send channel closed unexpectedly")
		var event Event
		require.NoError(t, json.Unmarshal(raw, &event))
		return event
	case <-time.After(timeout):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_PresenceSnapshot(t *testing.T) {
	hub := newTestHub(3 * time.Second)
	circleID := uuid.New()

	a := newTestClient(hub, circleID, "anon_a", "Brave Phoenix")
	b := newTestClient(hub, circleID, "anon_b", "Strong Voice")

	hub.Register(a)
	hub.Register(b)

	count, ids := hub.OnlineSnapshot(circleID)
	assert.Equal(t, 2, count)
	assert.ElementsMatch(t, []string{"anon_a", "anon_b"}, ids)

	// Второе подключение того же участника не меняет счетчик присутствия
	a2 := newTestClient(hub, circleID, "anon_a", "Brave Phoenix")
	hub.Register(a2)

	count, _ = hub.OnlineSnapshot(circleID)
	assert.Equal(t, 2, count)
}

func TestHub_UnregisterRemovesPresence(t *testing.T) {
	hub := newTestHub(3 * time.Second)
	circleID := uuid.New()

	a := newTestClient(hub, circleID, "anon_a", "Brave Phoenix")
	b := newTestClient(hub, circleID, "anon_b", "Strong Voice")
	hub.Register(a)
	hub.Register(b)

	hub.Unregister(a)

	count, ids := hub.OnlineSnapshot(circleID)
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"anon_b"}, ids)

	// Канал отключенного клиента закрыт: вычитка буфера завершается
	for range a.send {
	}

	// Повторный Unregister безопасен
	hub.Unregister(a)
}

func TestHub_RegisterBroadcastsJoinAndPresence(t *testing.T) {
	hub := newTestHub(3 * time.Second)
	circleID := uuid.New()

	a := newTestClient(hub, circleID, "anon_a", "Brave Phoenix")
	hub.Register(a)
	drainEvents(a)

	b := newTestClient(hub, circleID, "anon_b", "Strong Voice")
	hub.Register(b)

	// Существующий участник видит join нового и свежий снимок присутствия
	join := nextEvent(t, a, time.Second)
	assert.Equal(t, EventJoin, join.Type)
	var member MemberPayload
	require.NoError(t, json.Unmarshal(join.Data, &member))
	assert.Equal(t, "anon_b", member.ParticipantID)

	snap := nextEvent(t, a, time.Second)
	assert.Equal(t, EventPresenceSnap, snap.Type)
	var presence PresencePayload
	require.NoError(t, json.Unmarshal(snap.Data, &presence))
	assert.Equal(t, 2, presence.Count)
}

func TestHub_TypingStartExcludesTyper(t *testing.T) {
	hub := newTestHub(time.Minute)
	circleID := uuid.New()

	typer := newTestClient(hub, circleID, "anon_t", "Hopeful Spirit")
	observer := newTestClient(hub, circleID, "anon_o", "Resilient Heart")
	hub.Register(typer)
	hub.Register(observer)
	drainEvents(typer)
	drainEvents(observer)

	hub.MarkTyping(circleID, "anon_t", "Hopeful Spirit")

	event := nextEvent(t, observer, time.Second)
	assert.Equal(t, EventTypingStart, event.Type)
	var typing TypingPayload
	require.NoError(t, json.Unmarshal(event.Data, &typing))
	assert.Equal(t, "anon_t", typing.ParticipantID)
	assert.Equal(t, "Hopeful Spirit", typing.DisplayName)

	// Сам печатающий своего typing:start не получает
	select {
	case raw := <-typer.send:
		t.Fatalf("typer received unexpected event: %s", raw)
	default:
	}

	// Продление окна не рассылает событие повторно
	hub.MarkTyping(circleID, "anon_t", "Hopeful Spirit")
	select {
	case raw := <-observer.send:
		t.Fatalf("observer received duplicate typing event: %s", raw)
	default:
	}
}

func TestHub_TypingExpiresAfterTTL(t *testing.T) {
	hub := newTestHub(30 * time.Millisecond)
	circleID := uuid.New()

	typer := newTestClient(hub, circleID, "anon_t", "Hopeful Spirit")
	observer := newTestClient(hub, circleID, "anon_o", "Resilient Heart")
	hub.Register(typer)
	hub.Register(observer)
	drainEvents(typer)
	drainEvents(observer)

	hub.MarkTyping(circleID, "anon_t", "Hopeful Spirit")

	start := nextEvent(t, observer, time.Second)
	assert.Equal(t, EventTypingStart, start.Type)

	// Истечение окна сходится к тому же состоянию, что и явный stop
	stop := nextEvent(t, observer, time.Second)
	assert.Equal(t, EventTypingStop, stop.Type)
	var typing TypingPayload
	require.NoError(t, json.Unmarshal(stop.Data, &typing))
	assert.Equal(t, "anon_t", typing.ParticipantID)
}

func TestHub_StopTypingWithoutStartIsNoOp(t *testing.T) {
	hub := newTestHub(time.Minute)
	circleID := uuid.New()

	observer := newTestClient(hub, circleID, "anon_o", "Resilient Heart")
	hub.Register(observer)
	drainEvents(observer)

	hub.StopTyping(circleID, "anon_ghost")

	select {
	case raw := <-observer.send:
		t.Fatalf("observer received unexpected event: %s", raw)
	default:
	}
}

func TestHub_DisconnectClearsTyping(t *testing.T) {
	hub := newTestHub(time.Minute)
	circleID := uuid.New()

	typer := newTestClient(hub, circleID, "anon_t", "Hopeful Spirit")
	observer := newTestClient(hub, circleID, "anon_o", "Resilient Heart")
	hub.Register(typer)
	hub.Register(observer)
	drainEvents(typer)
	drainEvents(observer)

	hub.MarkTyping(circleID, "anon_t", "Hopeful Spirit")
	start := nextEvent(t, observer, time.Second)
	require.Equal(t, EventTypingStart, start.Type)

	// Обрыв подключения печатающего гасит его индикатор
	hub.Unregister(typer)

	stop := nextEvent(t, observer, time.Second)
	assert.Equal(t, EventTypingStop, stop.Type)
}

func TestHub_BroadcastNewMessageReachesAllMembers(t *testing.T) {
	hub := newTestHub(time.Minute)
	circleID := uuid.New()

	a := newTestClient(hub, circleID, "anon_a", "Brave Phoenix")
	b := newTestClient(hub, circleID, "anon_b", "Strong Voice")
	hub.Register(a)
	hub.Register(b)
	drainEvents(a)
	drainEvents(b)

	msg := &models.CircleMessage{
		ID:       uuid.New(),
		CircleID: circleID,
		SenderID: "anon_a",
		Body:     "hello everyone",
	}
	hub.BroadcastNewMessage(circleID, msg)

	for _, c := range []*Client{a, b} {
		event := nextEvent(t, c, time.Second)
		assert.Equal(t, EventMessageNew, event.Type)
		var got MessagePayload
		require.NoError(t, json.Unmarshal(event.Data, &got))
		assert.Equal(t, msg.ID, got.ID)
		assert.Equal(t, "hello everyone", got.Body)
	}
}

func TestHub_DisconnectParticipantRemovesAllConnections(t *testing.T) {
	hub := newTestHub(time.Minute)
	circleID := uuid.New()

	// Два подключения одного участника (например, две вкладки) и наблюдатель
	first := newTestClient(hub, circleID, "anon_t", "Hopeful Spirit")
	second := newTestClient(hub, circleID, "anon_t", "Hopeful Spirit")
	observer := newTestClient(hub, circleID, "anon_o", "Resilient Heart")
	hub.Register(first)
	hub.Register(second)
	hub.Register(observer)
	drainEvents(observer)

	hub.MarkTyping(circleID, "anon_t", "Hopeful Spirit")
	start := nextEvent(t, observer, time.Second)
	require.Equal(t, EventTypingStart, start.Type)

	// Явный выход из круга отцепляет оба подключения сразу
	hub.DisconnectParticipant(circleID, "anon_t")

	count, ids := hub.OnlineSnapshot(circleID)
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"anon_o"}, ids)

	// Каналы отцепленных подключений закрыты
	for range first.send {
	}
	for range second.send {
	}

	// Наблюдатель видит погашенный typing и события leave
	stop := nextEvent(t, observer, time.Second)
	assert.Equal(t, EventTypingStop, stop.Type)
	leave := nextEvent(t, observer, time.Second)
	assert.Equal(t, EventLeave, leave.Type)

	// Повторный вызов для уже отцепленного участника безопасен
	hub.DisconnectParticipant(circleID, "anon_t")
}

func TestHub_TypingRefreshIgnoresStaleExpiry(t *testing.T) {
	hub := newTestHub(time.Minute)
	circleID := uuid.New()

	typer := newTestClient(hub, circleID, "anon_t", "Hopeful Spirit")
	observer := newTestClient(hub, circleID, "anon_o", "Resilient Heart")
	hub.Register(typer)
	hub.Register(observer)
	drainEvents(typer)
	drainEvents(observer)

	hub.MarkTyping(circleID, "anon_t", "Hopeful Spirit")
	start := nextEvent(t, observer, time.Second)
	require.Equal(t, EventTypingStart, start.Type)

	// Продление окна: поколение записи растет
	hub.MarkTyping(circleID, "anon_t", "Hopeful Spirit")

	// Запоздавший колбэк старого таймера не гасит продленное окно
	hub.expireTyping(circleID, "anon_t", 0)
	select {
	case raw := <-observer.send:
		t.Fatalf("stale expiry ended a refreshed typing window: %s", raw)
	default:
	}

	// Колбэк текущего поколения завершает окно как обычно
	hub.expireTyping(circleID, "anon_t", 1)
	stop := nextEvent(t, observer, time.Second)
	assert.Equal(t, EventTypingStop, stop.Type)
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	hub := newTestHub(time.Minute)
	circleID := uuid.New()

	healthy := newTestClient(hub, circleID, "anon_h", "Brave Phoenix")
	slow := &Client{
		hub:           hub,
		send:          make(chan []byte), // небуферизованный канал без читателя
		circleID:      circleID,
		participantID: "anon_s",
		displayName:   "Strong Voice",
	}
	hub.Register(healthy)
	hub.Register(slow)
	drainEvents(healthy)

	msg := &models.CircleMessage{ID: uuid.New(), CircleID: circleID, Body: "ping"}
	hub.BroadcastNewMessage(circleID, msg)

	// Медленный клиент отцеплен, здоровый продолжает получать события
	count, ids := hub.OnlineSnapshot(circleID)
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"anon_h"}, ids)
}

func TestHub_SendAfterDropDoesNotPanic(t *testing.T) {
	hub := newTestHub(time.Minute)
	circleID := uuid.New()

	slow := &Client{
		hub:           hub,
		send:          make(chan []byte), // небуферизованный канал без читателя
		circleID:      circleID,
		participantID: "anon_s",
		displayName:   "Strong Voice",
	}
	healthy := newTestClient(hub, circleID, "anon_h", "Brave Phoenix")
	hub.Register(slow) // broadcast события join тут же отцепляет slow
	hub.Register(healthy)

	count, _ := hub.OnlineSnapshot(circleID)
	require.Equal(t, 1, count)

	// Горутина чтения может ответить ошибкой уже после отцепления хабом:
	// запись обязана быть no-op, а не паникой на закрытом канале
	assert.NotPanics(t, func() {
		slow.sendError("internal_error", "failed to send message")
	})
	assert.False(t, slow.trySend([]byte("{}")))
}
