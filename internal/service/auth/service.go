package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-gateway/internal/domain/auth"
	"github.com/cmlabs-hris/hris-gateway/internal/domain/user"
	"github.com/cmlabs-hris/hris-gateway/internal/pkg/password"
)

type tokenIssuer interface {
	GenerateAccessToken(subjectID int64, email string, role user.Role) (token string, expiresAt int64, err error)
	RevokeToken(token string)
}

type passwordComparer interface {
	Compare(hash, plain string) error
}

type AuthServiceImpl struct {
	logger   *slog.Logger
	userRepo user.UserRepository
	tokens   tokenIssuer
	hasher   passwordComparer
}

func NewAuthService(logger *slog.Logger, userRepo user.UserRepository, tokens tokenIssuer, hasher passwordComparer) auth.AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthServiceImpl{
		logger:   logger,
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	account, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if account.PasswordHash == "" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := a.hasher.Compare(account.PasswordHash, req.Password); err != nil {
		if !errors.Is(err, password.ErrMismatch) {
			a.logger.WarnContext(ctx, "stored password hash is unreadable", "user_id", account.ID, "error", err)
		}
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !account.IsActive() {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	token, expiresAt, err := a.tokens.GenerateAccessToken(account.ID, account.Email, account.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	a.logger.InfoContext(ctx, "user logged in", "user_id", account.ID, "role", account.Role)

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt - time.Now().Unix(),
		TokenType:            "Bearer",
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	a.tokens.RevokeToken(token)
	return nil
}
