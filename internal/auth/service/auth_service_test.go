package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	authdomain "github.com/reqmaster-ai/reqmaster-backend/internal/auth/domain"
	"github.com/reqmaster-ai/reqmaster-backend/internal/recordstore"
	reqdomain "github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"
	"github.com/reqmaster-ai/reqmaster-backend/internal/users"
)

func newTestService() (*AuthService, *users.Repo) {
	repo := users.NewRepo(recordstore.NewMemory())
	return NewAuthService(repo), repo
}

func rejectReason(t *testing.T, err error) authdomain.RejectReason {
	t.Helper()
	var authErr *authdomain.AuthError
	require.ErrorAs(t, err, &authErr)
	return authErr.Reason
}

func TestSignUp_StoresHashedPassword(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	u, err := svc.SignUp(ctx, "alice", "secret", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "secret", u.PasswordHash)

	stored, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")))
}

func TestSignUp_MissingFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.SignUp(ctx, "", "secret", "")
	assert.Equal(t, authdomain.ReasonMissingField, rejectReason(t, err))

	_, err = svc.SignUp(ctx, "alice", "", "")
	assert.Equal(t, authdomain.ReasonMissingField, rejectReason(t, err))
}

func TestSignUp_DuplicateLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	_, err := svc.SignUp(ctx, "alice", "secret", "alice@example.com")
	require.NoError(t, err)
	before, err := repo.Get(ctx, "alice")
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, "alice", "other", "other@example.com")
	assert.Equal(t, authdomain.ReasonDuplicateUsername, rejectReason(t, err))

	after, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSignUp_GuestUsernameReserved(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.SignUp(context.Background(), users.GuestUsername, "secret", "")
	assert.Equal(t, authdomain.ReasonDuplicateUsername, rejectReason(t, err))
}

func TestLogin_Succeeds(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	_, err := svc.SignUp(ctx, "alice", "secret", "")
	require.NoError(t, err)

	u, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

func TestLogin_Rejections(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	_, err := svc.SignUp(ctx, "alice", "secret", "")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "", "secret")
	assert.Equal(t, authdomain.ReasonMissingField, rejectReason(t, err))

	_, err = svc.Login(ctx, "bob", "secret")
	assert.Equal(t, authdomain.ReasonUnknownUsername, rejectReason(t, err))

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.Equal(t, authdomain.ReasonBadPassword, rejectReason(t, err))
}

func TestGuest_IsTransient(t *testing.T) {
	svc, repo := newTestService()

	g := svc.Guest()
	assert.True(t, g.IsGuest())

	_, err := repo.Get(context.Background(), users.GuestUsername)
	assert.ErrorIs(t, err, reqdomain.ErrNotFound)
}

func TestAuthError_Messages(t *testing.T) {
	cases := map[authdomain.RejectReason]string{
		authdomain.ReasonMissingField:      "Please enter username and password",
		authdomain.ReasonUnknownUsername:   "No account found with this username.",
		authdomain.ReasonBadPassword:       "Incorrect password.",
		authdomain.ReasonDuplicateUsername: "Account with this username already exists.",
	}
	for reason, want := range cases {
		assert.Equal(t, want, authdomain.Rejected(reason).Message())
	}
}
