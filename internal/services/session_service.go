package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dipadubank/internal/config"
	"dipadubank/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrMissingIdentity   = errors.New("session carries no user identity")
)

// SessionService issues and verifies RS256 session tokens carrying the caller identity
type SessionService struct {
	config.JWTConfig
}

// NewSessionService creates a new session service from JWT configuration
func NewSessionService(jwtConfig *config.JWTConfig) SessionServiceInterface {
	return &SessionService{
		JWTConfig: *jwtConfig,
	}
}

// IssueToken signs a session token for identity
func (ss *SessionService) IssueToken(identity models.Identity) (string, time.Time, error) {
	if identity.RoqUserID == "" {
		return "", time.Time{}, ErrMissingIdentity
	}

	now := time.Now()
	expiresAt := now.Add(ss.SessionTokenDuration)

	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ss.Issuer,
			Subject:   identity.RoqUserID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
		},
		RoqUserID: identity.RoqUserID,
		TenantID:  identity.TenantID,
		Roles:     identity.Roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tokenString, err := token.SignedString(ss.PrivateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ParseToken verifies a session token and returns its claims
func (ss *SessionService) ParseToken(tokenString string) (*models.SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, ss.keyFunc)
	if err != nil {
		return nil, ss.mapTokenError(err)
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Issuer != ss.Issuer {
		return nil, ErrInvalidIssuer
	}
	if claims.RoqUserID == "" {
		return nil, ErrMissingIdentity
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts the token from a "Bearer <token>" Authorization header
func (ss *SessionService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidAuthHeader
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

func (ss *SessionService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return ss.PublicKey, nil
}

func (ss *SessionService) mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpiredToken
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}
