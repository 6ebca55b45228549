package service

import (
	"github.com/anorlov/vaultshare/internal/adapter"
	"github.com/anorlov/vaultshare/internal/config"
	"github.com/anorlov/vaultshare/internal/crypto"
	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	VaultService   ClientVaultService
	SharingService ClientSharingService
	Saver          VaultSaver
}

func NewClientServices(relayAdapter adapter.RelayAdapter, cache store.VaultCache, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	keyPairSvc := crypto.NewKeyPairService()
	vaultSvc := NewClientVaultService(relayAdapter, cache, logger)

	return &ClientServices{
		AuthService:    NewClientAuthService(relayAdapter, keyPairSvc),
		VaultService:   vaultSvc,
		SharingService: NewClientSharingService(relayAdapter, keyPairSvc, logger),
		Saver:          NewVaultSaver(vaultSvc, cfg.Saver.Debounce, logger),
	}
}
