package jwt

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-gateway/internal/domain/auth"
	"github.com/cmlabs-hris/hris-gateway/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const tokenTypeAccess = "access"

// Service issues, verifies and revokes access tokens.
type Service interface {
	GenerateAccessToken(subjectID int64, email string, role user.Role) (token string, expiresAt int64, err error)
	Verify(ctx context.Context, token string) (auth.Session, error)
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
	}
}

func (j *JWTService) GenerateAccessToken(subjectID int64, email string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"sub":   strconv.FormatInt(subjectID, 10),
		"jti":   uuid.NewString(),
		"email": email,
		"role":  string(role),
		"type":  tokenTypeAccess,
		"exp":   expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// Verify turns an access token into a session. Every failure, whether the
// token is forged, expired, revoked or malformed, yields auth.ErrInvalidToken.
func (j *JWTService) Verify(ctx context.Context, tokenString string) (auth.Session, error) {
	if tokenString == "" || j.IsTokenRevoked(tokenString) {
		return auth.Session{}, auth.ErrInvalidToken
	}

	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil || token == nil {
		return auth.Session{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.Session{}, auth.ErrInvalidToken
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != tokenTypeAccess {
		return auth.Session{}, auth.ErrInvalidToken
	}

	subjectID, err := strconv.ParseInt(token.Subject(), 10, 64)
	if err != nil || subjectID <= 0 {
		return auth.Session{}, auth.ErrInvalidToken
	}

	roleStr, _ := claims["role"].(string)
	role := user.Role(roleStr)
	if role == "" {
		return auth.Session{}, auth.ErrInvalidToken
	}

	email, _ := claims["email"].(string)

	return auth.Session{
		SubjectID: subjectID,
		Email:     email,
		Role:      role,
	}, nil
}

// RevokeToken rejects token until it would have expired anyway. Entries for
// tokens that have already expired are dropped on each call.
func (j *JWTService) RevokeToken(token string) {
	expiresAt := time.Now().Unix()
	if parsed, err := jwtauth.VerifyToken(j.tokenAuth, token); err == nil && parsed != nil {
		expiresAt = parsed.Expiration().Unix()
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	now := time.Now().Unix()
	for t, exp := range j.revokedTokens {
		if exp < now {
			delete(j.revokedTokens, t)
		}
	}
	j.revokedTokens[token] = expiresAt
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}
