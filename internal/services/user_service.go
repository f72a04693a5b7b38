package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lmoralesc/code-journal-be/internal/auth"
	"github.com/lmoralesc/code-journal-be/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(ctx context.Context, username, password string) (models.User, error)
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}

// UserService provides sign-up and sign-in over the users table.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// Register hashes the password and inserts a new user. Uniqueness of the
// username is enforced by the database constraint.
func (s *UserService) Register(ctx context.Context, username, password string) (models.User, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var user models.User
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO users (username, hashed_password)
		 VALUES (?, ?)
		 RETURNING user_id, username, created_at`,
		username, hashed)
	if err := row.Scan(&user.UserID, &user.Username, &user.CreatedAt); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.username") {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

// Authenticate verifies a user's credentials. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx,
		`SELECT user_id, username, hashed_password, created_at
		 FROM users
		 WHERE username = ?`,
		username)
	err := row.Scan(&user.UserID, &user.Username, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrInvalidLogin
		}
		return models.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	ok, err := auth.VerifyPassword(user.HashedPassword, password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return models.User{}, ErrInvalidLogin
	}

	// Don't hand the hash to the transport layer
	user.HashedPassword = ""
	return user, nil
}
