package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	authdomain "github.com/reqmaster-ai/reqmaster-backend/internal/auth/domain"
	reqdomain "github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"
	"github.com/reqmaster-ai/reqmaster-backend/internal/users"
)

// AuthService validates credentials against the user repository.
// Passwords are stored as bcrypt hashes.
type AuthService struct {
	userRepo *users.Repo
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo *users.Repo) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// SignUp creates a new account. Rejects with duplicate-username without
// mutating the stored user list when the username is taken.
func (s *AuthService) SignUp(ctx context.Context, username, password, email string) (*users.User, error) {
	if username == "" || password == "" {
		return nil, authdomain.Rejected(authdomain.ReasonMissingField)
	}
	if username == users.GuestUsername {
		return nil, authdomain.Rejected(authdomain.ReasonDuplicateUsername)
	}

	if _, err := s.userRepo.Get(ctx, username); err == nil {
		return nil, authdomain.Rejected(authdomain.ReasonDuplicateUsername)
	} else if !errors.Is(err, reqdomain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &users.User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		Projects:     []reqdomain.Project{},
	}
	if err := s.userRepo.Upsert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login checks the credentials and returns the stored user.
func (s *AuthService) Login(ctx context.Context, username, password string) (*users.User, error) {
	if username == "" || password == "" {
		return nil, authdomain.Rejected(authdomain.ReasonMissingField)
	}

	u, err := s.userRepo.Get(ctx, username)
	if err != nil {
		if errors.Is(err, reqdomain.ErrNotFound) {
			return nil, authdomain.Rejected(authdomain.ReasonUnknownUsername)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, authdomain.Rejected(authdomain.ReasonBadPassword)
	}
	return u, nil
}

// Guest returns the transient guest account. It is never persisted.
func (s *AuthService) Guest() *users.User {
	return &users.User{
		Username: users.GuestUsername,
		Projects: []reqdomain.Project{},
	}
}
