package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/reqmaster-ai/reqmaster-backend/internal/session"
)

// Scheduler runs the periodic maintenance jobs.
type Scheduler struct {
	sessions *session.Manager
	idleTTL  time.Duration
	cron     *cron.Cron
}

func NewScheduler(sessions *session.Manager, idleTTL time.Duration) *Scheduler {
	return &Scheduler{
		sessions: sessions,
		idleTTL:  idleTTL,
		cron:     cron.New(cron.WithSeconds()),
	}
}

// Start registers the nightly session sweep (12:00 AM).
func (s *Scheduler) Start() {
	_, err := s.cron.AddFunc("0 0 0 * * *", func() {
		removed := s.sessions.PruneIdle(s.idleTTL)
		log.Printf("[info] operation=session_prune removed=%d", removed)
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (pruning idle sessions nightly at 12:00AM)")
	s.cron.Start()
}

// Stop halts the scheduler.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
