package httpapi

import (
	"net/http"

	"haven-booking-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// MessageHandler exposes the contact inbox over HTTP
type MessageHandler struct {
	inbox *usecase.MessageInbox
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(inbox *usecase.MessageInbox) *MessageHandler {
	return &MessageHandler{inbox: inbox}
}

type messageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// POST /v1/messages
func (h *MessageHandler) Submit(c *gin.Context) {
	var in messageRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.inbox.SubmitMessage(c.Request.Context(), usecase.MessageInput{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// GET /v1/admin/messages
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.inbox.ListMessages(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// POST /v1/admin/messages/:id/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	if err := h.inbox.MarkMessageRead(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}

// DELETE /v1/admin/messages/:id
func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.inbox.DeleteMessage(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
