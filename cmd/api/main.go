package main

import (
	"context"
	"log"
	"time"

	"github.com/reqmaster-ai/reqmaster-backend/config"
	"github.com/reqmaster-ai/reqmaster-backend/internal/bootstrap"
	"github.com/reqmaster-ai/reqmaster-backend/internal/chat/llm"
	"github.com/reqmaster-ai/reqmaster-backend/internal/feedback"
	"github.com/reqmaster-ai/reqmaster-backend/internal/jobs"
	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/extract"
	"github.com/reqmaster-ai/reqmaster-backend/internal/session"
)

const serviceName = "reqmaster-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	store, err := bootstrap.OpenStore(context.Background(), cfg.Store)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	llmTimeout := time.Duration(cfg.LLM.TimeoutSeconds) * time.Second
	sessions := session.NewManager()

	scheduler := jobs.NewScheduler(sessions, time.Duration(cfg.Session.IdleTTLMinutes)*time.Minute)
	scheduler.Start()
	defer scheduler.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Store:       store,
		Sessions:    sessions,
		ChatClient:  llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, llmTimeout),
		Extractor:   extract.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, llmTimeout),
		Feedback:    feedback.NewClient(cfg.Email.BaseURL, 0),
	})

	log.Printf("%s listening on :%s", serviceName, cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
