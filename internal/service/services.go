package service

import (
	"github.com/MKhiriev/go-user-api/internal/config"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/store"
)

type Services struct {
	AuthService AuthService
	UserService UserService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	userService := NewUserService(storages.UserRepository, logger)

	return &Services{
		UserService: userService,
		AuthService: NewAuthService(userService, storages.UserRepository, cfg.App, logger),
	}
}
