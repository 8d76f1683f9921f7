package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/infrastructure/config"
)

// Common errors
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrInvalidClaims    = errors.New("invalid token claims")
	ErrMissingUserID    = errors.New("missing user_id in claims")
)

// Token uses distinguish session tokens from refresh tokens
const (
	TokenUseAccess  = "access"
	TokenUseRefresh = "refresh"
)

// Claims represents custom JWT claims for storefront sessions
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	TokenUse string `json:"token_use"`
}

// Token is a signed session token with its expiry
type Token struct {
	Value     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	TokenType string    `json:"token_type"` // Bearer
}

// TokenPair is the access/refresh pair handed out at login
type TokenPair struct {
	AccessToken  Token `json:"access_token"`
	RefreshToken Token `json:"refresh_token"`
}

// JWTService issues and validates session tokens
type JWTService struct {
	secret            []byte
	expiration        time.Duration
	refreshExpiration time.Duration
	issuer            string
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secret:            []byte(cfg.Secret),
		expiration:        cfg.TokenExpiration,
		refreshExpiration: cfg.RefreshExpiration,
		issuer:            cfg.Issuer,
	}
}

// Generate creates a signed access token for the given user
func (s *JWTService) Generate(userID uuid.UUID, username string, role identity.Role) (*Token, error) {
	return s.generate(userID, username, role.String(), TokenUseAccess, s.expiration)
}

// GeneratePair creates an access/refresh token pair for the given user
func (s *JWTService) GeneratePair(userID uuid.UUID, username string, role identity.Role) (*TokenPair, error) {
	access, err := s.generate(userID, username, role.String(), TokenUseAccess, s.expiration)
	if err != nil {
		return nil, err
	}
	refresh, err := s.generate(userID, username, role.String(), TokenUseRefresh, s.refreshExpiration)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: *access, RefreshToken: *refresh}, nil
}

func (s *JWTService) generate(userID uuid.UUID, username, role, tokenUse string, expiration time.Duration) (*Token, error) {
	now := time.Now()
	expiresAt := now.Add(expiration)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   userID.String(),
			Audience:  jwt.ClaimStrings{s.issuer},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   userID.String(),
		Username: username,
		Role:     role,
		TokenUse: tokenUse,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &Token{
		Value:     signed,
		ExpiresAt: expiresAt,
		TokenType: "Bearer",
	}, nil
}

// Validate parses and validates an access token, returning its claims.
// Refresh tokens are rejected.
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenUse == TokenUseRefresh {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateRefresh parses and validates a refresh token, returning its claims
func (s *JWTService) ValidateRefresh(tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenUse != TokenUseRefresh {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *JWTService) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, ErrTokenNotYetValid
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}
	if claims.UserID == "" {
		return nil, ErrMissingUserID
	}

	return claims, nil
}
