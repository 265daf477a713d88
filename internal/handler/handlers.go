package handler

import (
	"github.com/MKhiriev/go-user-api/internal/config"
	"github.com/MKhiriev/go-user-api/internal/handler/http"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/ratelimit"
	"github.com/MKhiriev/go-user-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, limiter *ratelimit.Limiter, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, limiter, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
