// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/soundshelf/soundshelf/internal/config"
	"github.com/soundshelf/soundshelf/internal/logger"
	"github.com/soundshelf/soundshelf/internal/store"
	"github.com/soundshelf/soundshelf/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn         func(ctx context.Context, user models.User) (models.User, error)
	findByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findByIDFn       func(ctx context.Context, id string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.User{}, store.ErrUserNotFound
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "soundshelf",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}
}

func newTestAuthService(repo *mockUserRepository) AuthService {
	return NewAuthService(repo, testAppConfig(), logger.Nop())
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	var saved models.User
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			saved = user
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), models.Credentials{
		Username: "  Alice.01  ",
		Password: "sup3rsecret",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice.01", registered.Username, "username must be trimmed and lowercased")
	assert.NotEmpty(t, registered.ID)
	assert.False(t, registered.RegisteredAt.IsZero())

	assert.NotEqual(t, "sup3rsecret", saved.PasswordHash, "plaintext must never reach the repository")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("sup3rsecret")))
}

func TestAuthService_RegisterUser_DifferentDigestsForSamePassword(t *testing.T) {
	digests := make([]string, 0, 2)
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			digests = append(digests, user.PasswordHash)
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	for _, username := range []string{"first", "second"} {
		_, err := svc.RegisterUser(context.Background(), models.Credentials{
			Username: username,
			Password: "sup3rsecret",
		})
		require.NoError(t, err)
	}

	require.Len(t, digests, 2)
	assert.NotEqual(t, digests[0], digests[1], "bcrypt salts must make equal passwords produce distinct digests")
}

func TestAuthService_RegisterUser_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Username: "", Password: "sup3rsecret"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.Credentials{Username: "alice", Password: ""})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_InvalidUsernameShape(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	for _, username := range []string{
		"has space",
		"waaaaaaaytoolongname",
		"em@il-style",
		"кириллица",
	} {
		_, err := svc.RegisterUser(context.Background(), models.Credentials{
			Username: username,
			Password: "sup3rsecret",
		})
		require.ErrorIs(t, err, ErrInvalidUsername, "username %q must be rejected", username)
	}
}

func TestAuthService_RegisterUser_WeakPassword(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	for _, password := range []string{
		"sh0rt",
		"onlyletters",
		"12345678",
	} {
		_, err := svc.RegisterUser(context.Background(), models.Credentials{
			Username: "alice",
			Password: password,
		})
		require.ErrorIs(t, err, ErrWeakPassword, "password %q must be rejected", password)
	}
}

func TestAuthService_RegisterUser_UsernameTaken(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameTaken
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{
		Username: "alice",
		Password: "sup3rsecret",
	})

	require.ErrorIs(t, err, store.ErrUsernameTaken)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	digest, err := bcrypt.GenerateFromPassword([]byte("sup3rsecret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			assert.Equal(t, "alice", username, "lookup must use the normalized username")
			return models.User{ID: "user-1", Username: "alice", PasswordHash: string(digest)}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.Credentials{
		Username: " ALICE ",
		Password: "sup3rsecret",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	digest, err := bcrypt.GenerateFromPassword([]byte("sup3rsecret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{ID: "user-1", Username: "alice", PasswordHash: string(digest)}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err = svc.Login(context.Background(), models.Credentials{
		Username: "alice",
		Password: "wr0ngpassword",
	})

	require.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_UnknownUserSameError(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.Credentials{
		Username: "ghost",
		Password: "sup3rsecret",
	})

	// An unknown username must be indistinguishable from a wrong password.
	require.ErrorIs(t, err, ErrWrongCredentials)
	assert.NotErrorIs(t, err, store.ErrUserNotFound)
}

// ─────────────────────────────────────────────
// CreateToken / Authenticate
// ─────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	stored := models.User{ID: "user-1", Username: "alice"}
	repo := &mockUserRepository{
		findByIDFn: func(_ context.Context, id string) (models.User, error) {
			if id == stored.ID {
				return stored, nil
			}
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := newTestAuthService(repo)

	token, err := svc.CreateToken(context.Background(), stored)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	user, err := svc.Authenticate(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAuthService_Authenticate_GarbageToken(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Authenticate(context.Background(), "not-a-jwt-at-all")

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Authenticate_WrongSignKey(t *testing.T) {
	otherCfg := testAppConfig()
	otherCfg.TokenSignKey = "a-different-key"
	otherKeySvc := NewAuthService(&mockUserRepository{}, otherCfg, logger.Nop())

	token, err := otherKeySvc.CreateToken(context.Background(), models.User{ID: "user-1"})
	require.NoError(t, err)

	svc := newTestAuthService(&mockUserRepository{})

	_, err = svc.Authenticate(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Authenticate_ExpiredToken(t *testing.T) {
	expiredCfg := testAppConfig()
	expiredCfg.TokenDuration = -time.Minute
	expiredSvc := NewAuthService(&mockUserRepository{}, expiredCfg, logger.Nop())

	token, err := expiredSvc.CreateToken(context.Background(), models.User{ID: "user-1"})
	require.NoError(t, err)

	svc := newTestAuthService(&mockUserRepository{})

	_, err = svc.Authenticate(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Authenticate_DeletedUser(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := newTestAuthService(repo)

	token, err := svc.CreateToken(context.Background(), models.User{ID: "user-gone"})
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token.SignedString)

	// A valid token for a deleted account collapses into the same error as
	// any other bad token.
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	assert.NotErrorIs(t, err, store.ErrUserNotFound)
}

var errRepository = errors.New("repository error")

func TestAuthService_RegisterUser_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, errRepository
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{
		Username: "alice",
		Password: "sup3rsecret",
	})

	require.ErrorIs(t, err, errRepository)
}
