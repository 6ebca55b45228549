package handler

import (
	"github.com/anorlov/vaultshare/internal/config"
	"github.com/anorlov/vaultshare/internal/handler/http"
	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/internal/service"
)

// Handlers aggregates the relay's transport handlers. HTTP is the only
// transport today; the aggregate keeps the wiring point stable if another
// one is ever added.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
