package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reqmaster-ai/reqmaster-backend/internal/projects/service"
	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"
)

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	projects *service.ProjectService
}

func New(projects *service.ProjectService) *Handler {
	return &Handler{projects: projects}
}

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("/:project_id/open", h.open)
	rg.DELETE("/:project_id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	username := c.GetString("username")
	guest := c.GetBool("guest")

	items, err := h.projects.List(c.Request.Context(), username, guest)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) open(c *gin.Context) {
	projectID := strings.TrimSpace(c.Param("project_id"))
	token := c.GetString("session_token")
	username := c.GetString("username")

	p, err := h.projects.Open(c.Request.Context(), token, username, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	projectID := strings.TrimSpace(c.Param("project_id"))
	username := c.GetString("username")

	if err := h.projects.Delete(c.Request.Context(), username, projectID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
