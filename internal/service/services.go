package service

import (
	"github.com/vpetrenko/go-identity-server/internal/config"
	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/internal/store"
	"github.com/vpetrenko/go-identity-server/internal/utils"
)

// Services bundles all service-layer components for injection into the
// transport layer.
type Services struct {
	PermissionService      PermissionService
	PasswordService        PasswordService
	PasswordHistoryService PasswordHistoryService
	PasswordCleanupService PasswordCleanupService
	UserService            UserService
	AuthService            AuthService
	AuditService           AuditService
	CountryService         CountryService
}

// NewServices wires the full service graph on top of the repositories.
func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := utils.NewBcryptHasher(cfg.Auth.PasswordHashCost)

	audit := NewAuditService(repositories.AuditRepository, logger)
	permissions := NewPermissionService(repositories.UserRepository, logger)
	cleanup := NewPasswordCleanupService(repositories.PasswordHistoryRepository, logger)
	history := NewPasswordHistoryService(repositories.PasswordHistoryRepository, hasher, cleanup, logger)

	return &Services{
		PermissionService:      permissions,
		PasswordService:        NewPasswordService(permissions, repositories.UserRepository, hasher, history, audit, logger),
		PasswordHistoryService: history,
		PasswordCleanupService: cleanup,
		UserService:            NewUserService(permissions, repositories.UserRepository, cleanup, audit, logger),
		AuthService: NewAuthService(
			repositories.UserRepository,
			hasher,
			audit,
			cfg.Auth.TokenSignKey,
			cfg.Auth.TokenIssuer,
			cfg.Auth.TokenDuration,
			logger,
		),
		AuditService:   audit,
		CountryService: NewCountryService(repositories.CountryRepository, logger),
	}
}
