package service

import (
	"context"

	"github.com/anorlov/vaultshare/internal/store"
	"github.com/anorlov/vaultshare/models"
)

// ─────────────────────────────────────────────
// Mock: adapter.RelayAdapter
// ─────────────────────────────────────────────

type fakeRelayAdapter struct {
	token string

	registerFn     func(ctx context.Context, user models.User) error
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	getVaultFn     func(ctx context.Context) (string, error)
	putVaultFn     func(ctx context.Context, encryptedData string) error
	getPublicKeyFn func(ctx context.Context, email string) (string, error)
	createShareFn  func(ctx context.Context, req models.ShareRequest) (string, error)
	listSharesFn   func(ctx context.Context) ([]models.ShareEnvelope, error)
	deleteShareFn  func(ctx context.Context, id string) error
}

func (f *fakeRelayAdapter) SetToken(token string) { f.token = token }
func (f *fakeRelayAdapter) Token() string         { return f.token }

func (f *fakeRelayAdapter) Register(ctx context.Context, user models.User) error {
	if f.registerFn != nil {
		return f.registerFn(ctx, user)
	}
	return nil
}

func (f *fakeRelayAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, user)
	}
	return models.User{}, nil
}

func (f *fakeRelayAdapter) GetVault(ctx context.Context) (string, error) {
	if f.getVaultFn != nil {
		return f.getVaultFn(ctx)
	}
	return "", nil
}

func (f *fakeRelayAdapter) PutVault(ctx context.Context, encryptedData string) error {
	if f.putVaultFn != nil {
		return f.putVaultFn(ctx, encryptedData)
	}
	return nil
}

func (f *fakeRelayAdapter) GetPublicKey(ctx context.Context, email string) (string, error) {
	if f.getPublicKeyFn != nil {
		return f.getPublicKeyFn(ctx, email)
	}
	return "", nil
}

func (f *fakeRelayAdapter) CreateShare(ctx context.Context, req models.ShareRequest) (string, error) {
	if f.createShareFn != nil {
		return f.createShareFn(ctx, req)
	}
	return "", nil
}

func (f *fakeRelayAdapter) ListShares(ctx context.Context) ([]models.ShareEnvelope, error) {
	if f.listSharesFn != nil {
		return f.listSharesFn(ctx)
	}
	return nil, nil
}

func (f *fakeRelayAdapter) DeleteShare(ctx context.Context, id string) error {
	if f.deleteShareFn != nil {
		return f.deleteShareFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.VaultCache
// ─────────────────────────────────────────────

type fakeVaultCache struct {
	blobs map[string]string

	putErr error
	getErr error
}

func newFakeVaultCache() *fakeVaultCache {
	return &fakeVaultCache{blobs: make(map[string]string)}
}

func (f *fakeVaultCache) Put(_ context.Context, email, encryptedData string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.blobs[email] = encryptedData
	return nil
}

func (f *fakeVaultCache) Get(_ context.Context, email string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	blob, ok := f.blobs[email]
	if !ok {
		return "", store.ErrCacheMiss
	}
	return blob, nil
}

func (f *fakeVaultCache) Close() error { return nil }
