package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/obiajulu/fintrack-be/internal/apperror"
	"github.com/obiajulu/fintrack-be/internal/auth"
)

type AuthServiceTestSuite struct {
	suite.Suite
	tokens  *auth.TokenManager
	service *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	db := newTestDB(s.T())
	s.tokens = auth.NewTokenManager("a-test-secret-of-sufficient-length", time.Hour)
	s.service = NewAuthService(db, s.tokens, bcrypt.MinCost)
}

func (s *AuthServiceTestSuite) TestRegister() {
	user, token, err := s.service.Register(context.Background(), "Ada Lovelace", "ada@example.com", "StrongPassword123!")
	require.NoError(s.T(), err)

	assert.NotEmpty(s.T(), user.ID)
	assert.Equal(s.T(), "Ada Lovelace", user.FullName)
	assert.Equal(s.T(), "ada@example.com", user.Email)
	assert.Empty(s.T(), user.PasswordHash, "hash must be stripped from the returned user")

	// The issued token must verify back to the created user.
	claims, err := s.tokens.Verify(token)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), user.ID, claims.ID)
	assert.Equal(s.T(), user.Email, claims.Email)
}

func (s *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	_, _, err := s.service.Register(context.Background(), "Ada Lovelace", "ada@example.com", "StrongPassword123!")
	require.NoError(s.T(), err)

	_, _, err = s.service.Register(context.Background(), "Someone Else", "ada@example.com", "AnotherPassword456!")
	e := apperror.From(err)
	assert.Equal(s.T(), apperror.KindConflict, e.Kind)
}

func (s *AuthServiceTestSuite) TestRegisterDuplicateEmailDifferentCase() {
	_, _, err := s.service.Register(context.Background(), "Ada Lovelace", "ada@example.com", "StrongPassword123!")
	require.NoError(s.T(), err)

	_, _, err = s.service.Register(context.Background(), "Someone Else", "ADA@example.com", "AnotherPassword456!")
	e := apperror.From(err)
	assert.Equal(s.T(), apperror.KindConflict, e.Kind)
}

func (s *AuthServiceTestSuite) TestLogin() {
	registered, _, err := s.service.Register(context.Background(), "Ada Lovelace", "ada@example.com", "StrongPassword123!")
	require.NoError(s.T(), err)

	user, token, err := s.service.Login(context.Background(), "ada@example.com", "StrongPassword123!")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), registered.ID, user.ID)
	assert.Empty(s.T(), user.PasswordHash)

	claims, err := s.tokens.Verify(token)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), registered.ID, claims.ID)
}

func (s *AuthServiceTestSuite) TestLoginFailuresAreIndistinguishable() {
	_, _, err := s.service.Register(context.Background(), "Ada Lovelace", "ada@example.com", "StrongPassword123!")
	require.NoError(s.T(), err)

	_, _, wrongPassword := s.service.Login(context.Background(), "ada@example.com", "WrongPassword!")
	_, _, unknownEmail := s.service.Login(context.Background(), "nobody@example.com", "StrongPassword123!")

	wp := apperror.From(wrongPassword)
	ue := apperror.From(unknownEmail)
	assert.Equal(s.T(), apperror.KindUnauthorized, wp.Kind)
	assert.Equal(s.T(), apperror.KindUnauthorized, ue.Kind)
	assert.Equal(s.T(), wp.Message, ue.Message)
	assert.Equal(s.T(), wp.Status(), ue.Status())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
