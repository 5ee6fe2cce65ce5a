package http

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reqmaster-ai/reqmaster-backend/internal/feedback"
)

// Handler forwards user feedback to the email service.
type Handler struct {
	client *feedback.Client
}

func New(client *feedback.Client) *Handler {
	return &Handler{client: client}
}

// Register attaches the feedback route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.submit)
}

type submitReq struct {
	Message string `json:"message"`
	Email   string `json:"email,omitempty"`
}

func (h *Handler) submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Please write some feedback before submitting."})
		return
	}

	msg := feedback.Message{
		Text:     req.Message,
		Username: c.GetString("username"),
		Email:    req.Email,
	}

	if err := h.client.Send(c.Request.Context(), msg); err != nil {
		log.Printf("[error] operation=feedback_send error=%v", err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "Could not send feedback right now. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
