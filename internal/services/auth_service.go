package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/obiajulu/fintrack-be/internal/apperror"
	"github.com/obiajulu/fintrack-be/internal/auth"
	"github.com/obiajulu/fintrack-be/internal/models"
)

// AuthServiceProvider defines the interface for authentication services.
type AuthServiceProvider interface {
	Register(ctx context.Context, fullName, email, password string) (models.User, string, error)
	Login(ctx context.Context, email, password string) (models.User, string, error)
}

// AuthService registers and authenticates users. It owns credential
// hashing and token issuance.
type AuthService struct {
	db         *sql.DB
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(db *sql.DB, tokens *auth.TokenManager, bcryptCost int) *AuthService {
	return &AuthService{db: db, tokens: tokens, bcryptCost: bcryptCost}
}

// Register creates a new user and issues a token for it. A duplicate email
// fails with a conflict, never a crash.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (models.User, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return models.User{}, "", apperror.Internal(err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           uuid.New().String(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users(id, full_name, email, password_hash, created_at, updated_at) VALUES(?, ?, ?, ?, ?, ?)",
		user.ID, user.FullName, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, "", apperror.Conflict("Email already in use", map[string]string{"email": email})
		}
		return models.User{}, "", apperror.Internal(err)
	}

	token, err := s.tokens.Sign(user.ID, user.Email)
	if err != nil {
		return models.User{}, "", apperror.Internal(err)
	}

	user.PasswordHash = ""
	return user, token, nil
}

// Login verifies a user's credentials and issues a fresh token. An unknown
// email and a wrong password produce the identical error.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx,
		"SELECT id, full_name, email, password_hash, created_at, updated_at FROM users WHERE email = ?",
		email,
	)
	err := row.Scan(&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, "", apperror.Unauthorized("Invalid email or password")
		}
		return models.User{}, "", apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", apperror.Unauthorized("Invalid email or password")
	}

	token, err := s.tokens.Sign(user.ID, user.Email)
	if err != nil {
		return models.User{}, "", apperror.Internal(err)
	}

	user.PasswordHash = ""
	return user, token, nil
}

// isUniqueViolation reports whether err is a sqlite unique-constraint
// failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
