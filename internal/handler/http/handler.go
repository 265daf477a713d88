package http

import (
	"github.com/MKhiriev/go-user-api/internal/config"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/ratelimit"
	"github.com/MKhiriev/go-user-api/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  *ratelimit.Limiter
	cfg      *config.StructuredConfig

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter *ratelimit.Limiter, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limiter:  limiter,
		cfg:      cfg,
		logger:   logger,
	}
}
