package store

import (
	"github.com/MKhiriev/go-user-api/internal/logger"
)

// Storages aggregates every repository the application persists through.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages wires all repositories on top of the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}
}
