package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/reqmaster-ai/reqmaster-backend/internal/api/http"
	"github.com/reqmaster-ai/reqmaster-backend/internal/api/http/middleware"
	arthttp "github.com/reqmaster-ai/reqmaster-backend/internal/artifacts/http"
	"github.com/reqmaster-ai/reqmaster-backend/internal/auth"
	authhttp "github.com/reqmaster-ai/reqmaster-backend/internal/auth/http"
	authservice "github.com/reqmaster-ai/reqmaster-backend/internal/auth/service"
	chathttp "github.com/reqmaster-ai/reqmaster-backend/internal/chat/http"
	chatservice "github.com/reqmaster-ai/reqmaster-backend/internal/chat/service"
	"github.com/reqmaster-ai/reqmaster-backend/internal/feedback"
	fbhttp "github.com/reqmaster-ai/reqmaster-backend/internal/feedback/http"
	projhttp "github.com/reqmaster-ai/reqmaster-backend/internal/projects/http"
	projservice "github.com/reqmaster-ai/reqmaster-backend/internal/projects/service"
	"github.com/reqmaster-ai/reqmaster-backend/internal/recordstore"
	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/document"
	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/extract"
	"github.com/reqmaster-ai/reqmaster-backend/internal/session"
	"github.com/reqmaster-ai/reqmaster-backend/internal/users"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Store       recordstore.Store
	Sessions    *session.Manager
	ChatClient  chatservice.ChatClient
	Extractor   extract.Extractor
	Feedback    *feedback.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "X-Session-Token", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	userRepo := users.NewRepo(dep.Store)
	authSvc := authservice.NewAuthService(userRepo)
	chatSvc := chatservice.NewChatService(dep.Sessions, dep.ChatClient, dep.Extractor, userRepo)
	projectSvc := projservice.NewProjectService(userRepo, dep.Sessions)
	documents := document.New()

	api := r.Group("/api/v1")

	authhttp.New(authSvc, dep.Sessions).Register(api.Group("/auth"))

	authed := api.Group("")
	authed.Use(auth.WithSession(dep.Sessions))

	chathttp.New(chatSvc).Register(authed.Group("/chat"))
	projhttp.New(projectSvc).Register(authed.Group("/projects"))
	arthttp.New(chatSvc, documents).Register(authed.Group("/artifacts"))
	fbhttp.New(dep.Feedback).Register(authed.Group("/feedback"))

	return r
}
