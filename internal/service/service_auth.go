package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/internal/store"
	"github.com/vpetrenko/go-identity-server/internal/utils"
	"github.com/vpetrenko/go-identity-server/models"
)

// authService is the concrete implementation of [AuthService]. It verifies
// credentials against the stored bcrypt hash and issues HS256-signed JWT
// tokens carrying the user's role claims.
type authService struct {
	userRepository store.UserRepository
	hasher         utils.PasswordHasher
	audit          AuditService
	tokenSignKey   string
	tokenIssuer    string
	tokenDuration  time.Duration
	logger         *logger.Logger
}

// NewAuthService constructs an [AuthService] with the token parameters taken
// from configuration.
func NewAuthService(
	userRepository store.UserRepository,
	hasher utils.PasswordHasher,
	audit AuditService,
	tokenSignKey string,
	tokenIssuer string,
	tokenDuration time.Duration,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		audit:          audit,
		tokenSignKey:   tokenSignKey,
		tokenIssuer:    tokenIssuer,
		tokenDuration:  tokenDuration,
		logger:         logger,
	}
}

// Login authenticates the user by username and password and returns a signed
// token on success.
//
// Failure modes, in evaluation order:
//   - ErrInvalidDataProvided — empty username or password.
//   - ErrInvalidCredentials — unknown username, no password set yet, or the
//     password does not verify. One error for all three so account existence
//     is never leaked.
//   - ErrAccountInactive — credentials verified but the account is
//     deactivated.
func (s *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if req.UserName == "" || req.Password == "" {
		log.Error().Str("user_name", req.UserName).Msg("invalid login data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByUserName(ctx, req.UserName)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("user_name", req.UserName).Msg("user lookup failed")
		return models.Token{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !user.HasPassword() || !s.hasher.Verify(user.PasswordHash, req.Password) {
		return models.Token{}, ErrInvalidCredentials
	}

	if !user.IsActive() {
		return models.Token{}, ErrAccountInactive
	}

	roles, err := s.userRepository.GetRoles(ctx, user.UserID)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("role lookup failed")
		return models.Token{}, fmt.Errorf("role lookup failed: %w", err)
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, user.UserID, roles, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	s.audit.Record(ctx, user.UserID, models.AuditActionLogin, user.UserID, "")

	return token, nil
}

// ParseToken validates the signed token string and returns the parsed token
// model. All validation failures collapse into ErrTokenIsExpiredOrInvalid.
func (s *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
