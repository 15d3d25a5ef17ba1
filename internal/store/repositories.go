package store

import (
	"github.com/vpetrenko/go-identity-server/internal/logger"
)

// Repositories bundles all persistence-layer implementations for injection
// into the service layer.
type Repositories struct {
	UserRepository            UserRepository
	PasswordHistoryRepository PasswordHistoryRepository
	AuditRepository           AuditRepository
	CountryRepository         CountryRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:            NewUserRepository(db, logger),
		PasswordHistoryRepository: NewPasswordHistoryRepository(db, logger),
		AuditRepository:           NewAuditRepository(db, logger),
		CountryRepository:         NewCountryRepository(db, logger),
	}
}
