package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authdomain "github.com/reqmaster-ai/reqmaster-backend/internal/auth/domain"
	"github.com/reqmaster-ai/reqmaster-backend/internal/auth/service"
	"github.com/reqmaster-ai/reqmaster-backend/internal/session"
)

// Handler bundles the dependencies for auth HTTP endpoints.
type Handler struct {
	auth     *service.AuthService
	sessions *session.Manager
}

func New(auth *service.AuthService, sessions *session.Manager) *Handler {
	return &Handler{auth: auth, sessions: sessions}
}

// Register attaches auth routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/signup", h.signup)
	rg.POST("/login", h.login)
	rg.POST("/guest", h.guest)
	rg.POST("/logout", h.logout)
}

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

func (h *Handler) signup(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	u, err := h.auth.SignUp(c.Request.Context(), strings.TrimSpace(req.Username), req.Password, strings.TrimSpace(req.Email))
	if err != nil {
		h.rejectOrFail(c, err)
		return
	}

	token, err := h.sessions.Create(session.LoggedIn{Username: u.Username})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "token": token, "username": u.Username})
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	u, err := h.auth.Login(c.Request.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		h.rejectOrFail(c, err)
		return
	}

	token, err := h.sessions.Create(session.LoggedIn{Username: u.Username})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "username": u.Username})
}

func (h *Handler) guest(c *gin.Context) {
	u := h.auth.Guest()

	token, err := h.sessions.Create(session.LoggedIn{Username: u.Username, Guest: true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "username": u.Username, "guest": true})
}

func (h *Handler) logout(c *gin.Context) {
	token := strings.TrimSpace(c.GetHeader("X-Session-Token"))
	if token != "" {
		h.sessions.Delete(token)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) rejectOrFail(c *gin.Context, err error) {
	var rej *authdomain.AuthError
	if errors.As(err, &rej) {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": rej.Message(), "reason": rej.Reason})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}
