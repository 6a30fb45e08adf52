package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/borderchat-server/internal/core"
)

// ChatHandlers provides HTTP handlers for the chat REST endpoints.
type ChatHandlers struct {
	svc     *core.Service
	limiter *rateLimiter
	log     *zerolog.Logger
}

// NewChatHandlers creates a new chat handlers instance.
func NewChatHandlers(svc *core.Service, limiter *rateLimiter, logger *zerolog.Logger) *ChatHandlers {
	return &ChatHandlers{
		svc:     svc,
		limiter: limiter,
		log:     logger,
	}
}

// PostRequest represents the post message request body.
type PostRequest struct {
	Message  string `json:"message"`
	DeviceID string `json:"deviceId"`
}

// HistoryResponse represents the room history response body.
type HistoryResponse struct {
	Chat []string `json:"chat"`
}

// MessageResponse represents a success response body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GetHistory returns the full log for a room, empty for unseen rooms.
// GET /api/chat/:roomName
func (h *ChatHandlers) GetHistory(c *gin.Context) {
	chat, err := h.svc.History(c.Param("roomName"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Room name is required"})
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{Chat: chat})
}

// PostMessage validates and stores one chat message, then fans it out to
// subscribers of the room.
// POST /api/chat/:roomName
func (h *ChatHandlers) PostMessage(c *gin.Context) {
	room := c.Param("roomName")

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid post request body")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or missing message"})
		return
	}

	if !h.limiter.allow() {
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "Too many messages, slow down"})
		return
	}

	if err := h.svc.Post(c.Request.Context(), room, req.DeviceID, req.Message); err != nil {
		status, msg := statusForError(err)
		if status == http.StatusInternalServerError {
			h.log.Error().Err(err).Str("room", room).Msg("post failed")
		}
		c.JSON(status, ErrorResponse{Error: msg})
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: "Message sent successfully"})
}

// statusForError maps domain errors to HTTP responses. Unknown errors
// become a generic 500 with no internal detail.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrEmptyMessage):
		return http.StatusBadRequest, "Invalid or missing message"
	case errors.Is(err, core.ErrMessageTooLong):
		return http.StatusBadRequest, "Message too long"
	case errors.Is(err, core.ErrBadDeviceID):
		return http.StatusBadRequest, "Invalid or missing deviceId"
	case errors.Is(err, core.ErrBadRoom):
		return http.StatusBadRequest, "Room name is required"
	case errors.Is(err, core.ErrBanned):
		return http.StatusForbidden, "You have been banned from the chat"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
