package service

import (
	"context"
	"testing"
	"time"

	"github.com/anorlov/vaultshare/internal/config"
	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/internal/store"
	"github.com/anorlov/vaultshare/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, email string) (models.User, error)
	keyFn    func(ctx context.Context, email string) (string, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) GetPublicKeyByEmail(ctx context.Context, email string) (string, error) {
	if m.keyFn != nil {
		return m.keyFn(ctx, email)
	}
	return "", nil
}

func newTestAuthService(repo store.UserRepository) AuthService {
	cfg := config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "vaultshare-test",
		TokenDuration: time.Hour,
	}
	return NewAuthService(repo, cfg, logger.NewLogger("test"))
}

func validUser() models.User {
	return models.User{
		Email:               "alice@example.com",
		AuthHash:            "verifier-hash",
		PublicKey:           "pub-der-b64",
		EncryptedPrivateKey: "enc-priv-blob",
	}
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 42
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), validUser())
	require.NoError(t, err)
	assert.Equal(t, int64(42), registered.UserID)
}

func TestAuthService_RegisterUser_MissingFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	cases := []models.User{
		{},
		{Email: "a@b.c", AuthHash: "h", PublicKey: "p"},            // no encrypted private key
		{Email: "a@b.c", AuthHash: "h", EncryptedPrivateKey: "e"},  // no public key
		{AuthHash: "h", PublicKey: "p", EncryptedPrivateKey: "e"},  // no email
		{Email: "a@b.c", PublicKey: "p", EncryptedPrivateKey: "e"}, // no verifier
	}

	for _, user := range cases {
		_, err := svc.RegisterUser(context.Background(), user)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), validUser())
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	stored := validUser()
	stored.UserID = 7

	repo := &mockUserRepository{
		findFn: func(_ context.Context, email string) (models.User, error) {
			assert.Equal(t, stored.Email, email)
			return stored, nil
		},
	}
	svc := newTestAuthService(repo)

	found, err := svc.Login(context.Background(), models.User{Email: stored.Email, AuthHash: stored.AuthHash})
	require.NoError(t, err)
	assert.Equal(t, int64(7), found.UserID)
	assert.Equal(t, stored.EncryptedPrivateKey, found.EncryptedPrivateKey)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	stored := validUser()

	repo := &mockUserRepository{
		findFn: func(_ context.Context, _ string) (models.User, error) {
			return stored, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.User{Email: stored.Email, AuthHash: "wrong-verifier"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	repo := &mockUserRepository{
		findFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.User{Email: "nobody@example.com", AuthHash: "h"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_GetPublicKey(t *testing.T) {
	repo := &mockUserRepository{
		keyFn: func(_ context.Context, email string) (string, error) {
			if email == "bob@example.com" {
				return "bob-pub", nil
			}
			return "", store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	key, err := svc.GetPublicKey(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "bob-pub", key)

	_, err = svc.GetPublicKey(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	user := validUser()
	user.UserID = 99

	token, err := svc.CreateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(context.Background(), token.String())
	require.NoError(t, err)
	assert.Equal(t, int64(99), parsed.UserID)
	assert.Equal(t, user.Email, parsed.Email)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
