package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/debugger-rana/library-management-system/internal/apperrors"
	"github.com/debugger-rana/library-management-system/internal/core/domain"
	portssvc "github.com/debugger-rana/library-management-system/internal/core/ports/services"
	"github.com/debugger-rana/library-management-system/internal/core/services"
	"github.com/debugger-rana/library-management-system/internal/dto"
	"github.com/debugger-rana/library-management-system/internal/platform/config"
	"github.com/debugger-rana/library-management-system/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	repo    *MockUserRepository
	service portssvc.UserSvcFacade
	ctx     context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.repo = new(MockUserRepository)
	s.service = services.NewUserService(s.repo)
	s.ctx = context.Background()
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestCreateUser_Success() {
	req := dto.CreateUserRequest{Username: "librarian", Password: "s3cret-pass", Name: "Lib"}
	s.repo.On("FindUserByUsername", s.ctx, "librarian").Return(nil, apperrors.NewNotFoundError("user")).Once()
	s.repo.On("SaveUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID != "" &&
			u.Role == domain.RoleUser &&
			u.PasswordHash != "s3cret-pass" &&
			utils.CheckPasswordHash("s3cret-pass", u.PasswordHash) &&
			u.CreatedBy == "admin-1"
	})).Return(nil).Once()

	user, err := s.service.CreateUser(s.ctx, req, "admin-1")
	s.Require().NoError(err)
	s.Equal("librarian", user.Username)
}

func (s *UserServiceTestSuite) TestCreateUser_SeedActor() {
	req := dto.CreateUserRequest{Username: "root", Password: "s3cret-pass", Name: "Root", Role: domain.RoleAdmin}
	s.repo.On("FindUserByUsername", s.ctx, "root").Return(nil, apperrors.NewNotFoundError("user")).Once()
	s.repo.On("SaveUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleAdmin && u.CreatedBy == "system"
	})).Return(nil).Once()

	_, err := s.service.CreateUser(s.ctx, req, "")
	s.Require().NoError(err)
}

func (s *UserServiceTestSuite) TestCreateUser_Duplicate() {
	s.repo.On("FindUserByUsername", s.ctx, "taken").Return(&domain.User{UserID: "u1", Username: "taken"}, nil).Once()

	_, err := s.service.CreateUser(s.ctx, dto.CreateUserRequest{Username: "taken", Password: "password1", Name: "T"}, "admin-1")
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.repo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestUpdateUser_NoChanges() {
	existing := &domain.User{UserID: "u1", Name: "Same"}
	s.repo.On("FindUserByID", s.ctx, "u1").Return(existing, nil).Once()

	name := "Same"
	user, err := s.service.UpdateUser(s.ctx, "u1", dto.UpdateUserRequest{Name: &name}, "admin-1")
	s.Require().NoError(err)
	s.Equal(existing, user)
	s.repo.AssertNotCalled(s.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestUpdateUser_Role() {
	existing := &domain.User{UserID: "u1", Role: domain.RoleUser}
	s.repo.On("FindUserByID", s.ctx, "u1").Return(existing, nil).Once()
	s.repo.On("UpdateUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleAdmin && u.LastUpdatedBy == "admin-1"
	})).Return(nil).Once()

	role := domain.RoleAdmin
	user, err := s.service.UpdateUser(s.ctx, "u1", dto.UpdateUserRequest{Role: &role}, "admin-1")
	s.Require().NoError(err)
	s.True(user.IsAdmin())
}

func (s *UserServiceTestSuite) TestDeleteUser_Self() {
	err := s.service.DeleteUser(s.ctx, "admin-1", "admin-1")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *UserServiceTestSuite) TestDeleteUser() {
	s.repo.On("MarkUserDeleted", s.ctx, "u2", mock.AnythingOfType("time.Time"), "admin-1").Return(nil).Once()

	s.NoError(s.service.DeleteUser(s.ctx, "u2", "admin-1"))
}

func (s *UserServiceTestSuite) TestAuthenticateUser() {
	hash, err := utils.HashPassword("correct horse")
	s.Require().NoError(err)
	stored := &domain.User{UserID: "u1", Username: "lib", PasswordHash: hash}

	s.repo.On("FindUserByUsername", s.ctx, "lib").Return(stored, nil).Twice()
	s.repo.On("FindUserByUsername", s.ctx, "ghost").Return(nil, apperrors.NewNotFoundError("user")).Once()

	user, err := s.service.AuthenticateUser(s.ctx, "lib", "correct horse")
	s.Require().NoError(err)
	s.Equal("u1", user.UserID)

	_, err = s.service.AuthenticateUser(s.ctx, "lib", "wrong")
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = s.service.AuthenticateUser(s.ctx, "ghost", "anything")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestTokenService_GenerateAccessToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryDuration: time.Hour, JWTIssuer: "lms"}
	svc := services.NewTokenService(cfg)

	token, expiresAt, err := svc.GenerateAccessToken(context.Background(), &domain.User{UserID: "u1", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.False(t, expiresAt.IsZero())

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, string(domain.RoleAdmin), claims.Role)
}
