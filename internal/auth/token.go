// Package auth turns signed identity tokens into the user identity the store syncs under.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonathan/resume-craft/internal/config"
	"github.com/jonathan/resume-craft/internal/types"
)

// Claims represents the identity claims carried by a token.
// UserID is accepted for tokens that do not set the standard subject.
type Claims struct {
	UserID  string `json:"user_id,omitempty"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// Identity returns the user identity described by the claims.
func (c *Claims) Identity() *types.Identity {
	id := c.Subject
	if id == "" {
		id = c.UserID
	}
	return &types.Identity{
		ID:          id,
		DisplayName: c.Name,
		Email:       c.Email,
		AvatarURL:   c.Picture,
	}
}

// TokenService provides identity token generation and validation.
type TokenService struct {
	config *config.IdentityConfig
	now    func() time.Time
}

// NewTokenService creates a new token service with the given configuration.
func NewTokenService(cfg *config.IdentityConfig) *TokenService {
	return &TokenService{
		config: cfg,
		now:    time.Now,
	}
}

// IssueToken signs a token for identity. Used for local and development sign-in.
func (s *TokenService) IssueToken(identity types.Identity) (string, error) {
	if err := identity.Validate(); err != nil {
		return "", fmt.Errorf("invalid identity: %w", err)
	}

	now := s.now()
	expiresAt := now.Add(time.Duration(s.config.ExpirationHours) * time.Hour)

	claims := &Claims{
		Name:    identity.DisplayName,
		Email:   identity.Email,
		Picture: identity.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			Issuer:    s.config.Issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseIdentity validates a token and returns the identity it carries.
func (s *TokenService) ParseIdentity(tokenString string) (*types.Identity, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	identity := claims.Identity()
	if err := identity.Validate(); err != nil {
		return nil, fmt.Errorf("token carries an invalid identity: %w", err)
	}
	return identity, nil
}

// ValidateToken validates a token and returns the claims.
func (s *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(s.config.Issuer))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrSignatureInvalid), errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("invalid token signature: %w", err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("token expired: %w", err)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("malformed token: %w", err)
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	return claims, nil
}
