package service

import (
	"testing"
	"time"

	"go-challan-book/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[uuid.UUID]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]model.User)}
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	u := r.users[userID]
	u.Password = hashedPassword
	r.users[userID] = u
	return nil
}

func (r *fakeUserRepo) UpdateTokenVersion(userID uuid.UUID, version string) error {
	u := r.users[userID]
	u.TokenVersion = version
	r.users[userID] = u
	return nil
}

func (r *fakeUserRepo) UpdateLastSeen(userID uuid.UUID) error {
	u := r.users[userID]
	now := time.Now()
	u.LastSeenAt = &now
	r.users[userID] = u
	return nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, active bool) *model.User {
	t.Helper()
	user := &model.User{
		Email:    email,
		FullName: "Test User",
		IsActive: active,
	}
	require.NoError(t, user.SetPassword(password))
	require.NoError(t, repo.Create(user))
	return user
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "owner@shop.in", "secret123", true)
	svc := NewAuthService(repo)

	resp, err := svc.Login("owner@shop.in", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "owner@shop.in", resp.User.Email)

	// The issued token validates against the rotated session version
	validated, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, validated.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "owner@shop.in", "secret123", true)
	svc := NewAuthService(repo)

	_, err := svc.Login("owner@shop.in", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@shop.in", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "owner@shop.in", "secret123", false)
	svc := NewAuthService(repo)

	_, err := svc.Login("owner@shop.in", "secret123")
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestSecondLoginInvalidatesFirstSession(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "owner@shop.in", "secret123", true)
	svc := NewAuthService(repo)

	first, err := svc.Login("owner@shop.in", "secret123")
	require.NoError(t, err)
	_, err = svc.Login("owner@shop.in", "secret123")
	require.NoError(t, err)

	_, err = svc.ValidateToken(first.Token)
	assert.ErrorIs(t, err, ErrSessionReplaced)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "owner@shop.in", "secret123", true)
	svc := NewAuthService(repo)

	resp, err := svc.Login("owner@shop.in", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(user.ID))

	_, err = svc.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, ErrSessionReplaced)
}

func TestRefreshTokenKeepsSessionAlive(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "owner@shop.in", "secret123", true)
	svc := NewAuthService(repo)

	login, err := svc.Login("owner@shop.in", "secret123")
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(user.ID)
	require.NoError(t, err)

	// Both the original and the refreshed token stay valid
	_, err = svc.ValidateToken(login.Token)
	assert.NoError(t, err)
	_, err = svc.ValidateToken(refreshed.Token)
	assert.NoError(t, err)
}

func TestResetPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "owner@shop.in", "secret123", true)
	svc := NewAuthService(repo)

	assert.ErrorIs(t, svc.ResetPassword("owner@shop.in", "wrong", "newpass99"), ErrWrongPassword)
	require.NoError(t, svc.ResetPassword("owner@shop.in", "secret123", "newpass99"))

	_, err := svc.Login("owner@shop.in", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login("owner@shop.in", "newpass99")
	assert.NoError(t, err)
}
