package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/safecircle/peer_support_system/internal/config"
	"github.com/safecircle/peer_support_system/internal/service"
	"github.com/safecircle/peer_support_system/internal/ws"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	matchingService service.MatchingService
	circleService   service.CircleService
	messageService  service.MessageService
	hub             *ws.Hub
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	matchingService service.MatchingService,
	circleService service.CircleService,
	messageService service.MessageService,
	hub *ws.Hub,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		matchingService: matchingService,
		circleService:   circleService,
		messageService:  messageService,
		hub:             hub,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Match a seeker to a support circle
// @Description Find an existing circle with free capacity for the seeker profile, or create a new one. Returns the circle, the created membership and a human-readable match reason.
// @Tags Circles
// @Accept json
// @Produce json
// @Param profile body MatchRequest true "Seeker profile"
// @Success 200 {object} MatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "No circle with free capacity"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /circles/match [post]
func (h *Handler) matchCircle(c *gin.Context) {
	var input MatchRequest
	log := h.logger.WithField("method", "matchCircle")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.matchingService.FindOrCreateCircle(c.Request.Context(), DTOToSeekerProfile(input))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, MatchResultToResponse(result))
}

// @Summary Get circle by ID
// @Description Get a single circle with its active members and current online count.
// @Tags Circles
// @Accept json
// @Produce json
// @Param id path string true "Circle ID"
// @Success 200 {object} CircleDetailResponse
// @Failure 400 {object} map[string]string "Invalid circle ID"
// @Failure 404 {object} map[string]string "Circle not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /circles/{id} [get]
func (h *Handler) getCircle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid circle ID"})
		return
	}
	log := h.logger.WithField("method", "getCircle").WithField("circle_id", id)

	circle, members, err := h.circleService.GetCircle(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	online, _ := h.hub.OnlineSnapshot(id)
	c.JSON(http.StatusOK, CircleDetailResponse{
		Circle:  ModelToCircleResponse(circle),
		Members: ModelsToMemberResponses(members),
		Online:  online,
	})
}

// @Summary Leave a circle
// @Description Deactivate the participant's membership and decrement the circle member count. Leaving twice is a no-op.
// @Tags Circles
// @Accept json
// @Produce json
// @Param id path string true "Circle ID"
// @Param leave body LeaveRequest true "Leave request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid circle ID or request body"
// @Failure 404 {object} map[string]string "Membership not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /circles/{id}/leave [post]
func (h *Handler) leaveCircle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid circle ID"})
		return
	}
	log := h.logger.WithField("method", "leaveCircle").WithField("circle_id", id)

	var input LeaveRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.circleService.LeaveCircle(c.Request.Context(), id, input.ParticipantID); err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	// Вышедший участник тут же исчезает из присутствия и рассылки
	h.hub.DisconnectParticipant(id, input.ParticipantID)

	c.Status(http.StatusNoContent)
}

// @Summary Get circle message history
// @Description Get up to limit messages with server_timestamp before the given cursor, in ascending timestamp order. Requires active membership.
// @Tags Messages
// @Accept json
// @Produce json
// @Param id path string true "Circle ID"
// @Param participant_id query string true "Participant ID"
// @Param limit query int false "Page size" default(50)
// @Param before query string false "RFC3339 timestamp cursor"
// @Success 200 {array} MessageResponse
// @Failure 400 {object} map[string]string "Invalid circle ID or cursor"
// @Failure 403 {object} map[string]string "Not an active member"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /circles/{id}/messages [get]
func (h *Handler) listMessages(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid circle ID"})
		return
	}
	log := h.logger.WithField("method", "listMessages").WithField("circle_id", id)

	participantID := c.Query("participant_id")
	if participantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "participant_id query parameter is required"})
		return
	}

	if _, err := h.circleService.VerifyMember(c.Request.Context(), id, participantID); err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	var before *time.Time
	if raw := c.Query("before"); raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid before cursor, expected RFC3339"})
			return
		}
		before = &t
	}

	msgs, err := h.messageService.GetMessages(c.Request.Context(), id, limit, before)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToMessageResponses(msgs))
}

// @Summary Send a message to a circle
// @Description HTTP fallback for sending a message when the realtime channel is unavailable. The message is broadcast to connected members as well.
// @Tags Messages
// @Accept json
// @Produce json
// @Param id path string true "Circle ID"
// @Param message body SendMessageRequest true "Message send request"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 403 {object} map[string]string "Not an active member"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /circles/{id}/messages [post]
func (h *Handler) postMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid circle ID"})
		return
	}
	log := h.logger.WithField("method", "postMessage").WithField("circle_id", id)

	var input SendMessageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.messageService.SendMessage(c.Request.Context(), id, input.ParticipantID, input.Body)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, ModelToMessageResponse(msg))
}

// @Summary Add a reaction to a message
// @Description Add an emoji reaction from the participant. Adding the same reaction twice is a no-op.
// @Tags Messages
// @Accept json
// @Produce json
// @Param id path string true "Circle ID"
// @Param messageId path string true "Message ID"
// @Param reaction body ReactionRequest true "Reaction request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid IDs or request body"
// @Failure 403 {object} map[string]string "Not an active member"
// @Failure 404 {object} map[string]string "Message not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /circles/{id}/messages/{messageId}/reactions [post]
func (h *Handler) addReaction(c *gin.Context) {
	circleID, messageID, ok := h.parseMessagePath(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "addReaction").WithField("message_id", messageID)

	var input ReactionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.messageService.AddReaction(c.Request.Context(), circleID, messageID, input.ParticipantID, input.Emoji)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToMessageResponse(msg))
}

// @Summary Remove a reaction from a message
// @Description Remove the participant's emoji reaction. Removing an absent reaction is a no-op.
// @Tags Messages
// @Accept json
// @Produce json
// @Param id path string true "Circle ID"
// @Param messageId path string true "Message ID"
// @Param participant_id query string true "Participant ID"
// @Param emoji query string true "Reaction emoji"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid IDs or missing query parameters"
// @Failure 403 {object} map[string]string "Not an active member"
// @Failure 404 {object} map[string]string "Message not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /circles/{id}/messages/{messageId}/reactions [delete]
func (h *Handler) removeReaction(c *gin.Context) {
	circleID, messageID, ok := h.parseMessagePath(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "removeReaction").WithField("message_id", messageID)

	participantID := c.Query("participant_id")
	emoji := c.Query("emoji")
	if participantID == "" || emoji == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "participant_id and emoji query parameters are required"})
		return
	}

	msg, err := h.messageService.RemoveReaction(c.Request.Context(), circleID, messageID, participantID, emoji)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToMessageResponse(msg))
}

// @Summary Edit a message
// @Description Replace the message body. Only the original sender may edit; the message is marked as edited.
// @Tags Messages
// @Accept json
// @Produce json
// @Param id path string true "Circle ID"
// @Param messageId path string true "Message ID"
// @Param message body EditMessageRequest true "Message edit request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid IDs or request body"
// @Failure 403 {object} map[string]string "Not the message sender"
// @Failure 404 {object} map[string]string "Message not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /circles/{id}/messages/{messageId} [patch]
func (h *Handler) editMessage(c *gin.Context) {
	circleID, messageID, ok := h.parseMessagePath(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "editMessage").WithField("message_id", messageID)

	var input EditMessageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.messageService.EditMessage(c.Request.Context(), circleID, messageID, input.ParticipantID, input.Body)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToMessageResponse(msg))
}

// @Summary Get circle statistics
// @Description Get aggregated statistics across all circles. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /circles/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.circleService.Stats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) parseMessagePath(c *gin.Context) (circleID, messageID uuid.UUID, ok bool) {
	circleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid circle ID"})
		return uuid.Nil, uuid.Nil, false
	}
	messageID, err = uuid.Parse(c.Param("messageId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message ID"})
		return uuid.Nil, uuid.Nil, false
	}
	return circleID, messageID, true
}

// respondServiceError переводит сентинельные ошибки сервисного слоя в HTTP-статусы
func (h *Handler) respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		log.WithError(err).Warn("Validation failed in service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrCircleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "circle not found"})
	case errors.Is(err, service.ErrMessageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
	case errors.Is(err, service.ErrMemberNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "membership not found"})
	case errors.Is(err, service.ErrNotAMember):
		c.JSON(http.StatusForbidden, gin.H{"error": "not an active member of this circle"})
	case errors.Is(err, service.ErrNotMessageSender):
		c.JSON(http.StatusForbidden, gin.H{"error": "only the sender can edit a message"})
	case errors.Is(err, service.ErrCapacityExceeded):
		c.JSON(http.StatusConflict, gin.H{"error": "no circle with free capacity, please retry"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
