package service

import (
	"context"

	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"
	"github.com/reqmaster-ai/reqmaster-backend/internal/session"
	"github.com/reqmaster-ai/reqmaster-backend/internal/users"
)

// ProjectService exposes saved project snapshots. Guests have none.
type ProjectService struct {
	userRepo *users.Repo
	sessions *session.Manager
}

// NewProjectService creates a new project service.
func NewProjectService(userRepo *users.Repo, sessions *session.Manager) *ProjectService {
	return &ProjectService{userRepo: userRepo, sessions: sessions}
}

// List returns the user's projects, most recent first.
func (s *ProjectService) List(ctx context.Context, username string, guest bool) ([]domain.Project, error) {
	if guest {
		return []domain.Project{}, nil
	}
	u, err := s.userRepo.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	return u.Projects, nil
}

// Open loads a saved snapshot into the session and moves it to the
// summary view. The snapshot's requirements and messages are reproduced
// field for field.
func (s *ProjectService) Open(ctx context.Context, token, username, projectID string) (*domain.Project, error) {
	p, err := s.userRepo.GetProject(ctx, username, projectID)
	if err != nil {
		return nil, err
	}

	err = s.sessions.With(token, func(st session.State) (session.State, error) {
		return session.Reduce(st, session.ProjectOpened{Project: *p})
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes one project snapshot by explicit user action.
func (s *ProjectService) Delete(ctx context.Context, username, projectID string) error {
	return s.userRepo.DeleteProject(ctx, username, projectID)
}
