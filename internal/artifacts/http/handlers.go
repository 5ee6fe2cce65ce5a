package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reqmaster-ai/reqmaster-backend/internal/chat/service"
	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/diagram"
	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/document"
	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"
	"github.com/reqmaster-ai/reqmaster-backend/internal/session"
)

// Handler renders diagram and document artifacts from the session's
// current requirements model.
type Handler struct {
	chatService *service.ChatService
	documents   *document.Generator
}

func New(chatService *service.ChatService, documents *document.Generator) *Handler {
	return &Handler{chatService: chatService, documents: documents}
}

// Register attaches artifact routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/diagrams", h.listDiagrams)
	rg.GET("/diagrams/:kind", h.renderDiagram)
	rg.GET("/documents", h.listDocuments)
	rg.GET("/documents/:kind", h.renderDocument)
}

func (h *Handler) listDiagrams(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "diagrams": diagram.Catalog})
}

func (h *Handler) renderDiagram(c *gin.Context) {
	entry, ok := diagram.Lookup(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "unknown diagram kind"})
		return
	}

	reqs, err := h.requirements(c)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":     true,
		"kind":   entry.Kind,
		"name":   entry.Name,
		"source": entry.Generate(*reqs),
	})
}

func (h *Handler) listDocuments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "documents": document.Catalog})
}

func (h *Handler) renderDocument(c *gin.Context) {
	reqs, err := h.requirements(c)
	if err != nil {
		return
	}

	kind := c.Param("kind")
	text, ok := h.documents.Render(kind, *reqs)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "unknown document kind"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "kind": kind, "content": text})
}

// requirements loads the session's model, writing the error response
// itself when there is none.
func (h *Handler) requirements(c *gin.Context) (*domain.Requirements, error) {
	token := c.GetString("session_token")
	reqs, err := h.chatService.Requirements(token)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid session token"})
		case errors.Is(err, domain.ErrNoRequirements):
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "no requirements extracted yet"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return nil, err
	}
	return reqs, nil
}
