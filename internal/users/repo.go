package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/reqmaster-ai/reqmaster-backend/internal/recordstore"
	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"
)

// Repo persists users in the record store, one record per username.
// There is no cross-record coordination; the last writer wins.
type Repo struct {
	store recordstore.Store
}

// NewRepo creates a user repository over the given store.
func NewRepo(store recordstore.Store) *Repo {
	return &Repo{store: store}
}

// Get loads a user by username. Returns domain.ErrNotFound when absent.
func (r *Repo) Get(ctx context.Context, username string) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("username required")
	}
	raw, err := r.store.Get(ctx, username)
	if err != nil {
		if errors.Is(err, recordstore.ErrKeyNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode user %q: %w", username, err)
	}
	return &u, nil
}

// Upsert writes the user record, replacing any existing one with the same
// username. The guest account is never persisted.
func (r *Repo) Upsert(ctx context.Context, u *User) error {
	if u == nil || u.Username == "" {
		return fmt.Errorf("username required")
	}
	if u.IsGuest() {
		return fmt.Errorf("guest user is not persisted")
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user %q: %w", u.Username, err)
	}
	return r.store.Put(ctx, u.Username, raw)
}

// Delete removes a user record.
func (r *Repo) Delete(ctx context.Context, username string) error {
	return r.store.Delete(ctx, username)
}

// List returns every stored user.
func (r *Repo) List(ctx context.Context) ([]User, error) {
	keys, err := r.store.Keys(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]User, 0, len(keys))
	for _, k := range keys {
		u, err := r.Get(ctx, k)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, *u)
	}
	return out, nil
}

// AddProject prepends a project snapshot to the user's list so the most
// recent project comes first.
func (r *Repo) AddProject(ctx context.Context, username string, p domain.Project) error {
	u, err := r.Get(ctx, username)
	if err != nil {
		return err
	}
	u.Projects = append([]domain.Project{p.Clone()}, u.Projects...)
	return r.Upsert(ctx, u)
}

// DeleteProject removes one project from the user's list. Returns
// domain.ErrNotFound when no project with the given id exists.
func (r *Repo) DeleteProject(ctx context.Context, username, projectID string) error {
	u, err := r.Get(ctx, username)
	if err != nil {
		return err
	}
	kept := u.Projects[:0]
	found := false
	for _, p := range u.Projects {
		if p.ID == projectID {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return domain.ErrNotFound
	}
	u.Projects = kept
	return r.Upsert(ctx, u)
}

// GetProject looks up a single project snapshot.
func (r *Repo) GetProject(ctx context.Context, username, projectID string) (*domain.Project, error) {
	u, err := r.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	for _, p := range u.Projects {
		if p.ID == projectID {
			snap := p.Clone()
			return &snap, nil
		}
	}
	return nil, domain.ErrNotFound
}
