// Package services contains server-side business logic. This file implements
// UserService, which orchestrates the session lifecycle: registration, login
// (token issuance), and logout (token revocation).
package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/revocations"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/users"
)

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint an access token
// - Logout: revoke the presented token's jti
//
// UserService is the only writer of the user directory and the revocation
// registry.
type UserService struct {
	users                       users.Repository
	revocations                 revocations.Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	logger                      logging.Logger
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(u users.Repository, r revocations.Repository, cfg *config.Config, l logging.Logger) *UserService {
	return &UserService{
		users:                       u,
		revocations:                 r,
		jwtSecret:                   []byte(cfg.JWTSecretKey),
		accessTokenValidityDuration: cfg.AccessTokenTTL,
		logger:                      l.With("module", "user_service"),
	}
}

// Register hashes the password and inserts the user into the directory.
// The directory assigns the id and records the creation timestamp set here.
// A duplicate username surfaces common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, username string, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		s.logger.Error(ctx, "error hashing password", "error", err.Error())
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		s.logger.Error(ctx, "error creating user", "error", err.Error())
		return nil, common.ErrorInternal
	}

	return created, nil
}

// Login verifies the credentials and mints an access token with a fresh jti.
// A missing user and a wrong password both yield common.ErrorUnauthorized so
// that the external response cannot be used for username enumeration; the
// specific cause is only logged.
func (s *UserService) Login(ctx context.Context, username string, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "login failed: username not found", "username", username)
			return "", common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "error looking up user", "error", err.Error())
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		s.logger.Warn(ctx, "login failed: invalid password", "username", username)
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.Username, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		s.logger.Error(ctx, "error generating token", "error", err.Error())
		return "", common.ErrorInternal
	}

	return token, nil
}

// Logout revokes the jti of a previously-verified token. The request layer
// has already checked signature, expiry, and revocation; here only the user
// lookup and the registry insert remain. Revoking an already-revoked jti is
// a no-op success.
func (s *UserService) Logout(ctx context.Context, username string, jti string) error {
	if _, err := s.users.GetByUsername(ctx, username); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "logout failed: username not found", "username", username)
			return common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "error looking up user", "error", err.Error())
		return common.ErrorInternal
	}

	if err := s.revocations.Revoke(ctx, jti); err != nil {
		s.logger.Error(ctx, "error revoking token", "error", err.Error())
		return common.ErrorInternal
	}

	s.logger.Info(ctx, "token revoked", "jti", jti)
	return nil
}
