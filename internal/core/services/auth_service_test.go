package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/muhammadanas3/currency-exchange-api/internal/apperrors"
	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
	"github.com/muhammadanas3/currency-exchange-api/internal/core/services"
	"github.com/muhammadanas3/currency-exchange-api/internal/dto"
	"github.com/muhammadanas3/currency-exchange-api/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	mockUsers *MockUserRepository
	service   *services.AuthService
	secret    string
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUsers = new(MockUserRepository)
	suite.secret = "test-secret"
	suite.service = services.NewAuthService(suite.mockUsers, suite.secret, time.Hour, "currency-exchange-api")
}

func (suite *AuthServiceTestSuite) storedUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       "user-1",
		Username:     "alice",
		PasswordHash: hash,
		Role:         domain.RoleCashier,
		CreatedAt:    time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *AuthServiceTestSuite) TestLoginSuccessIssuesTokenWithClaims() {
	ctx := context.Background()
	user := suite.storedUser("hunter2pass")
	suite.mockUsers.On("FindUserByUsername", ctx, "alice").Return(user, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Username: "alice", Password: "hunter2pass"})

	suite.Require().NoError(err)
	suite.Equal(int64(3600), resp.ExpiresIn)

	claims, err := utils.ParseAndValidateJWT(resp.Token, suite.secret)
	suite.Require().NoError(err)
	principal := claims.ToPrincipal()
	suite.Equal("user-1", principal.UserID)
	suite.Equal(domain.RoleCashier, principal.Role)
	suite.True(principal.AccountCreatedAt.Equal(user.CreatedAt))
}

func (suite *AuthServiceTestSuite) TestLoginBadPassword() {
	ctx := context.Background()
	suite.mockUsers.On("FindUserByUsername", ctx, "alice").Return(suite.storedUser("hunter2pass"), nil).Once()

	_, err := suite.service.Login(ctx, dto.LoginRequest{Username: "alice", Password: "wrong-pass"})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrUnauthorized))
}

func (suite *AuthServiceTestSuite) TestLoginUnknownUserLooksLikeBadPassword() {
	ctx := context.Background()
	suite.mockUsers.On("FindUserByUsername", ctx, "mallory").
		Return(nil, fmt.Errorf("%w: no user", apperrors.ErrNotFound)).Once()

	_, err := suite.service.Login(ctx, dto.LoginRequest{Username: "mallory", Password: "whatever1"})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrUnauthorized))
	suite.Contains(err.Error(), "invalid username or password")
}

func (suite *AuthServiceTestSuite) TestRegisterCreatesUser() {
	ctx := context.Background()
	suite.mockUsers.On("FindUserByUsername", ctx, "bob").
		Return(nil, fmt.Errorf("%w: no user", apperrors.ErrNotFound)).Once()
	suite.mockUsers.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "bob" && u.Role == domain.RoleCustomer &&
			u.UserID != "" && utils.CheckPasswordHash("s3cret-pass", u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, dto.RegisterRequest{
		Username: "bob",
		Password: "s3cret-pass",
		Role:     "CUSTOMER",
	})

	suite.Require().NoError(err)
	suite.Equal("bob", user.Username)
	suite.mockUsers.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegisterDuplicateUsername() {
	ctx := context.Background()
	suite.mockUsers.On("FindUserByUsername", ctx, "alice").Return(suite.storedUser("hunter2pass"), nil).Once()

	_, err := suite.service.Register(ctx, dto.RegisterRequest{
		Username: "alice",
		Password: "s3cret-pass",
		Role:     "CUSTOMER",
	})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockUsers.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegisterUnknownRole() {
	_, err := suite.service.Register(context.Background(), dto.RegisterRequest{
		Username: "carol",
		Password: "s3cret-pass",
		Role:     "SUPERUSER",
	})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
