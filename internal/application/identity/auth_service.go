package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/auth"
)

// errInvalidCredentials deliberately does not reveal whether the username
// or the password was wrong
var errInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")

// AuthService handles registration and session issuance
type AuthService struct {
	users          identity.UserRepository
	tokens         *auth.JWTService
	eventPublisher shared.EventPublisher
}

// NewAuthService creates a new AuthService
func NewAuthService(users identity.UserRepository, tokens *auth.JWTService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *AuthService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Register creates an account and issues its first session
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	role := identity.Role(req.Role)
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role must be customer or seller")
	}

	taken, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}
	taken, err = s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Email is already registered")
	}

	user, err := identity.NewUser(req.Username, req.Email, req.Password, role)
	if err != nil {
		return nil, err
	}
	if req.DisplayName != "" {
		if err := user.SetDisplayName(req.DisplayName); err != nil {
			return nil, err
		}
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		for _, event := range user.GetDomainEvents() {
			_ = s.eventPublisher.Publish(ctx, event)
		}
		user.ClearDomainEvents()
	}

	return s.respondWithSession(user)
}

// Login verifies credentials and issues a session
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, errInvalidCredentials
	}
	if !user.VerifyPassword(req.Password) {
		return nil, errInvalidCredentials
	}
	if !user.IsActive() {
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "This account has been deactivated")
	}

	user.RecordLogin(time.Now())
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	return s.respondWithSession(user)
}

// Refresh exchanges a valid refresh token for a new session pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*AuthResponse, error) {
	claims, err := s.tokens.ValidateRefresh(req.RefreshToken)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token is invalid or expired")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token is invalid or expired")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive() {
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "This account has been deactivated")
	}

	return s.respondWithSession(user)
}

// GetByID returns an account's profile
func (s *AuthService) GetByID(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

func (s *AuthService) respondWithSession(user *identity.User) (*AuthResponse, error) {
	pair, err := s.tokens.GeneratePair(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		User:         ToUserResponse(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
