package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dm-chat/internal/service"
)

// MessageHandler mantiene dependencias para los endpoints de mensajes.
type MessageHandler struct {
	logger  *zap.Logger
	msgServ *service.MessageService
}

// NewMessageHandler crea una instancia de MessageHandler con dependencias necesarias.
func NewMessageHandler(logger *zap.Logger, msgServ *service.MessageService) *MessageHandler {
	return &MessageHandler{
		logger:  logger,
		msgServ: msgServ,
	}
}

// ListMessages maneja GET /messages/:user_id.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	targetID, ok := targetUserID(c)
	if !ok {
		return
	}
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	entries, err := h.msgServ.ListFor(c.Request.Context(), claims.UserID, targetID)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		h.logger.Error("list messages failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list messages"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// SendMessage maneja POST /messages/:user_id.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	targetID, ok := targetUserID(c)
	if !ok {
		return
	}
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid send message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.msgServ.Send(c.Request.Context(), claims.UserID, targetID, req.Message); err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		case errors.Is(err, service.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "empty message"})
		default:
			h.logger.Error("send message failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not send message"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}

// targetUserID parsea el parámetro user_id del path como entero.
// Parsear acá evita comparaciones con coerción de tipos en la autorización.
func targetUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, false
	}
	return id, true
}
