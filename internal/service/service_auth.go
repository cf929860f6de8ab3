package service

import (
	"context"
	"sync"
	"time"

	"github.com/heart-smiles/heart-smiles-api/internal/config"
	"github.com/heart-smiles/heart-smiles-api/internal/logger"
	"github.com/heart-smiles/heart-smiles-api/internal/utils"
	"github.com/heart-smiles/heart-smiles-api/models"
)

const tokenIssuer = "heart-smiles-api"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle. Accounts live in an in-memory map keyed by email; passwords are
// stored as HMAC-SHA256 hashes keyed by the JWT secret.
//
// A missing JWT secret does not prevent construction: every operation checks
// it first and fails with ErrAuthNotConfigured, so the misconfiguration
// surfaces on first use rather than blocking startup.
type authService struct {
	jwtSecret     string
	tokenDuration time.Duration
	logger        *logger.Logger

	mu    sync.RWMutex
	users map[string]models.User // keyed by email
}

// NewAuthService constructs an AuthService populated with security parameters
// from cfg. The returned service is safe for concurrent use.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		jwtSecret:     cfg.JWTSecret,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
		users:         make(map[string]models.User),
	}
}

// RegisterUser creates a new user account.
//
// It validates that both Email and Password are non-empty, hashes the
// password with the configured secret, and stores the account.
//
// Returns the stored user (with a server-assigned UserID and the plaintext
// password cleared) or:
//   - ErrAuthNotConfigured if the JWT secret is absent.
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrEmailAlreadyExists if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if a.jwtSecret == "" {
		log.Error().Msg("auth operation attempted without configured JWT secret")
		return models.User{}, ErrAuthNotConfigured
	}

	if user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.users[user.Email]; exists {
		log.Warn().Str("email", user.Email).Msg("registration attempt for existing email")
		return models.User{}, ErrEmailAlreadyExists
	}

	user.UserID = utils.NewID()
	user.PasswordHash = utils.HashString(user.Password, a.jwtSecret)
	user.Password = ""
	a.users[user.Email] = user

	log.Debug().Str("user_id", user.UserID).Msg("user registered")

	return user, nil
}

// Login verifies the given credentials against the stored account.
//
// Returns the stored user or:
//   - ErrAuthNotConfigured if the JWT secret is absent.
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrNoUserWasFound if the email is unknown.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if a.jwtSecret == "" {
		log.Error().Msg("auth operation attempted without configured JWT secret")
		return models.User{}, ErrAuthNotConfigured
	}

	if user.Email == "" || user.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	a.mu.RLock()
	found, ok := a.users[user.Email]
	a.mu.RUnlock()

	if !ok {
		log.Warn().Str("email", user.Email).Msg("login attempt for unknown email")
		return models.User{}, ErrNoUserWasFound
	}

	if !utils.VerifyHash(user.Password, a.jwtSecret, found.PasswordHash) {
		log.Warn().Str("email", user.Email).Msg("login attempt with wrong password")
		return models.User{}, ErrWrongPassword
	}

	return found, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if a.jwtSecret == "" {
		return models.Token{}, ErrAuthNotConfigured
	}

	token, err := utils.GenerateJWTToken(tokenIssuer, user.UserID, a.tokenDuration, a.jwtSecret)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("token generation failed")
		return models.Token{}, err
	}

	return token, nil
}

// ParseToken validates tokenString and returns the parsed token.
//
// Returns ErrAuthNotConfigured when the JWT secret is absent and
// ErrTokenIsExpiredOrInvalid for any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if a.jwtSecret == "" {
		return models.Token{}, ErrAuthNotConfigured
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.jwtSecret, tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("token validation failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
