package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reqmaster-ai/reqmaster-backend/internal/chat/service"
	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"
	"github.com/reqmaster-ai/reqmaster-backend/internal/session"
)

// Handler bundles the dependencies for chat HTTP endpoints.
type Handler struct {
	chatService *service.ChatService
}

func New(chatService *service.ChatService) *Handler {
	return &Handler{chatService: chatService}
}

// Register attaches chat routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/start", h.start)
	rg.GET("/messages", h.listMessages)
	rg.POST("/messages", h.send)
	rg.POST("/files", h.uploadFile)
	rg.POST("/finalize", h.finalize)
}

func (h *Handler) start(c *gin.Context) {
	token := c.GetString("session_token")
	if err := h.chatService.Start(token); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) listMessages(c *gin.Context) {
	token := c.GetString("session_token")
	msgs, err := h.chatService.Messages(token)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "messages": msgs})
}

type sendReq struct {
	Message string `json:"message"`
}

func (h *Handler) send(c *gin.Context) {
	token := c.GetString("session_token")

	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	userMsg, modelMsg, err := h.chatService.Send(c.Request.Context(), token, req.Message)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user_message": userMsg, "model_message": modelMsg})
}

type uploadReq struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Content  string `json:"content"`
}

func (h *Handler) uploadFile(c *gin.Context) {
	token := c.GetString("session_token")

	var req uploadReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	userMsg, modelMsg, err := h.chatService.UploadFile(c.Request.Context(), token, req.Name, req.MimeType, req.Content)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user_message": userMsg, "model_message": modelMsg})
}

func (h *Handler) finalize(c *gin.Context) {
	token := c.GetString("session_token")

	reqs, project, err := h.chatService.Finalize(c.Request.Context(), token)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := gin.H{"ok": true, "requirements": reqs}
	if project != nil {
		resp["project"] = project
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid session token"})
	case errors.Is(err, session.ErrBusy):
		c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "a request is already in flight"})
	case errors.Is(err, session.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrConversationTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Please have a longer conversation before analyzing."})
	case errors.Is(err, domain.ErrExtractionFailed):
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "Failed to extract requirements. Please try again."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
