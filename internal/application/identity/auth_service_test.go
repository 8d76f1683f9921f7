package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role identity.Role) ([]*identity.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, u *identity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func newAuthFixture(t *testing.T) (*AuthService, *MockUserRepository) {
	t.Helper()
	users := new(MockUserRepository)
	tokens := auth.NewJWTService(config.JWTConfig{
		Secret:            "test-secret-test-secret-test-secret",
		TokenExpiration:   time.Hour,
		RefreshExpiration: 24 * time.Hour,
		Issuer:            "storefront-test",
	})
	return NewAuthService(users, tokens), users
}

func registeredUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("ana.petrova", "ana@example.com", "sup3rsecret", identity.RoleCustomer)
	require.NoError(t, err)
	user.ClearDomainEvents()
	return user
}

func TestAuthService_Register(t *testing.T) {
	service, users := newAuthFixture(t)

	users.On("ExistsByUsername", mock.Anything, "ana.petrova").Return(false, nil)
	users.On("ExistsByEmail", mock.Anything, "ana@example.com").Return(false, nil)
	users.On("Save", mock.Anything, mock.Anything).Return(nil)

	resp, err := service.Register(context.Background(), RegisterRequest{
		Username: "ana.petrova",
		Email:    "ana@example.com",
		Password: "sup3rsecret",
		Role:     "customer",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana.petrova", resp.User.Username)
	assert.Equal(t, "customer", resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken.Value)
	assert.NotEmpty(t, resp.RefreshToken.Value)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	service, users := newAuthFixture(t)

	users.On("ExistsByUsername", mock.Anything, "ana.petrova").Return(true, nil)

	_, err := service.Register(context.Background(), RegisterRequest{
		Username: "ana.petrova",
		Email:    "ana@example.com",
		Password: "sup3rsecret",
		Role:     "customer",
	})

	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_Login(t *testing.T) {
	service, users := newAuthFixture(t)
	user := registeredUser(t)

	users.On("FindByUsername", mock.Anything, "ana.petrova").Return(user, nil)
	users.On("Save", mock.Anything, user).Return(nil)

	resp, err := service.Login(context.Background(), LoginRequest{
		Username: "ana.petrova",
		Password: "sup3rsecret",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken.Value)
	assert.NotNil(t, user.LastLoginAt)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	service, users := newAuthFixture(t)
	user := registeredUser(t)

	users.On("FindByUsername", mock.Anything, "ana.petrova").Return(user, nil)
	users.On("FindByUsername", mock.Anything, "nobody").Return(nil, shared.ErrNotFound)

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(context.Background(), LoginRequest{Username: "ana.petrova", Password: "wrong"})
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("unknown user yields the same error", func(t *testing.T) {
		_, err := service.Login(context.Background(), LoginRequest{Username: "nobody", Password: "whatever"})
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	service, users := newAuthFixture(t)
	user := registeredUser(t)
	require.NoError(t, user.Deactivate())

	users.On("FindByUsername", mock.Anything, "ana.petrova").Return(user, nil)

	_, err := service.Login(context.Background(), LoginRequest{Username: "ana.petrova", Password: "sup3rsecret"})

	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "ACCOUNT_DEACTIVATED", domainErr.Code)
}

func TestAuthService_Refresh(t *testing.T) {
	service, users := newAuthFixture(t)
	user := registeredUser(t)

	users.On("ExistsByUsername", mock.Anything, user.Username).Return(false, nil)
	users.On("ExistsByEmail", mock.Anything, user.Email).Return(false, nil)
	users.On("Save", mock.Anything, mock.Anything).Return(nil)
	users.On("FindByUsername", mock.Anything, user.Username).Return(user, nil)
	users.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	login, err := service.Login(context.Background(), LoginRequest{Username: "ana.petrova", Password: "sup3rsecret"})
	require.NoError(t, err)

	t.Run("valid refresh token issues a new pair", func(t *testing.T) {
		resp, err := service.Refresh(context.Background(), RefreshRequest{RefreshToken: login.RefreshToken.Value})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken.Value)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		_, err := service.Refresh(context.Background(), RefreshRequest{RefreshToken: login.AccessToken.Value})
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_TOKEN", domainErr.Code)
	})
}
