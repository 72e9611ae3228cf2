package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/safecircle/peer_support_system/internal/ws"
)

// @Summary Connect to a circle realtime channel
// @Description Upgrade the connection to WebSocket for message delivery, typing indicators and presence. Requires active membership.
// @Tags Realtime
// @Param id path string true "Circle ID"
// @Param participant_id query string true "Participant ID"
// @Success 101 "Switching Protocols"
// @Failure 400 {object} map[string]string "Invalid circle ID or missing participant_id"
// @Failure 403 {object} map[string]string "Not an active member"
// @Router /circles/{id}/ws [get]
func (h *Handler) serveWS(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid circle ID"})
		return
	}
	log := h.logger.WithField("method", "serveWS").WithField("circle_id", id)

	participantID := c.Query("participant_id")
	if participantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "participant_id query parameter is required"})
		return
	}

	// Членство проверяется до апгрейда, чтобы отвечать обычным HTTP-статусом
	member, err := h.circleService.VerifyMember(c.Request.Context(), id, participantID)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade сам пишет HTTP-ответ при отказе
		log.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	client := ws.NewClient(h.hub, conn, h.messageService, h.logger, h.cfg, id, participantID, member.DisplayName)
	client.Run()
}

// checkOrigin разрешает любые источники при пустом списке (dev-режим) и
// сверяет Origin со списком из конфигурации в остальных случаях
func (h *Handler) checkOrigin(r *http.Request) bool {
	if len(h.cfg.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	for _, allowed := range h.cfg.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}
