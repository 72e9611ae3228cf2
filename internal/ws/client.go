package ws

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/safecircle/peer_support_system/internal/config"
	"github.com/safecircle/peer_support_system/internal/service"
	"github.com/sirupsen/logrus"
)

const sendTimeout = 10 * time.Second

// Client - одно долгоживущее двунаправленное подключение участника.
// Состояние присутствия мутируется только жизненным циклом собственного
// подключения (connect/disconnect), что делает записи в Hub фактически
// single-writer.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	messages service.MessageService
	logger   *logrus.Entry
	cfg      *config.Config

	circleID      uuid.UUID
	participantID string
	displayName   string

	// mu сериализует закрытие send с записями из горутины чтения: хаб может
	// отцепить подключение в любой момент, и запись в закрытый канал - паника
	mu     sync.Mutex
	closed bool
}

func NewClient(
	hub *Hub,
	conn *websocket.Conn,
	messages service.MessageService,
	logger *logrus.Logger,
	cfg *config.Config,
	circleID uuid.UUID,
	participantID, displayName string,
) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, cfg.ClientSendBuf),
		messages: messages,
		logger: logger.WithFields(logrus.Fields{
			"component":      "ws",
			"circle_id":      circleID,
			"participant_id": participantID,
		}),
		cfg:           cfg,
		circleID:      circleID,
		participantID: participantID,
		displayName:   displayName,
	}
}

// Run регистрирует подключение в хабе и обслуживает его до разрыва.
// Блокируется на чтении; запись идет в отдельной горутине.
func (c *Client) Run() {
	c.hub.Register(c)
	go c.writePump()
	c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(int64(c.cfg.MessageMaxLen) + 1024)
	c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.WithError(err).Warn("Unexpected connection close")
			}
			return
		}

		var event Event
		if err := json.Unmarshal(raw, &event); err != nil {
			c.sendError("bad_event", "invalid event payload")
			continue
		}

		c.handleEvent(event)
	}
}

func (c *Client) handleEvent(event Event) {
	switch event.Type {
	case EventMessageSend:
		var payload MessageSendPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			c.sendError("bad_event", "invalid message payload")
			return
		}
		c.handleSend(payload.Body)

	case EventTypingStart:
		c.hub.MarkTyping(c.circleID, c.participantID, c.displayName)

	case EventTypingStop:
		c.hub.StopTyping(c.circleID, c.participantID)

	default:
		c.sendError("bad_event", "unknown event type: "+event.Type)
	}
}

// handleSend выполняет полный путь отправки. Рассылку message:new делает
// сервис через Broadcaster, поэтому отправитель получит свое сообщение тем же
// широковещательным событием, что и остальные.
func (c *Client) handleSend(body string) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	// Отправка неявно завершает состояние "печатает"
	c.hub.StopTyping(c.circleID, c.participantID)

	if _, err := c.messages.SendMessage(ctx, c.circleID, c.participantID, body); err != nil {
		c.logger.WithError(err).Warn("Failed to send message over realtime channel")
		switch {
		case errors.Is(err, service.ErrValidation):
			c.sendError("validation_error", "message body is empty or too long")
		case errors.Is(err, service.ErrNotAMember):
			c.sendError("not_a_member", "not an active member of this circle")
		default:
			c.sendError("internal_error", "failed to send message")
		}
	}
}

// closeSend закрывает канал отправки не более одного раза. Вызывается только
// хабом под его мьютексом; после закрытия trySend становится no-op.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// trySend - неблокирующая запись в канал отправки, безопасная относительно
// конкурентного closeSend. Возвращает false, если подключение уже отцеплено
// или буфер переполнен.
func (c *Client) trySend(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (c *Client) sendError(code, message string) {
	data, err := marshalEvent(EventError, ErrorPayload{Code: code, Message: message})
	if err != nil {
		return
	}
	c.trySend(data)
}

func (c *Client) writePump() {
	ticker := time.NewTicker(c.cfg.PongWait * 9 / 10)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if !ok {
				// Хаб закрыл канал - подключение отцеплено
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
