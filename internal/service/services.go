package service

import (
	"github.com/anorlov/vaultshare/internal/config"
	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/internal/store"
)

type Services struct {
	AuthService  AuthService
	VaultService VaultService
	ShareService ShareService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.Auth, logger),
		VaultService: NewVaultService(storages.VaultRepository, logger),
		ShareService: NewShareService(storages.ShareRepository, logger),
	}
}
