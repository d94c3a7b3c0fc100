package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jvdt-hub/backend/internal/database"
	"github.com/jvdt-hub/backend/internal/models"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
)

type Store struct {
	db  *database.DB
	now func() time.Time
}

func NewStore(db *database.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Create inserts a user with an already hashed password.
func (s *Store) Create(ctx context.Context, email, name, passwordHash string) (*models.User, error) {
	now := s.now().UTC()
	user := &models.User{Email: email, Name: name, CreatedAt: now, UpdatedAt: now}

	err := s.db.QueryRowContext(ctx, s.db.Rebind(
		`INSERT INTO users (email, name, password, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 RETURNING id`),
		email, name, passwordHash, now, now,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// ByEmail returns the user and the stored password hash.
func (s *Store) ByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.scanOne(ctx,
		`SELECT id, email, name, password, created_at, updated_at FROM users WHERE email = ?`, email)
}

func (s *Store) ByID(ctx context.Context, id int64) (*models.User, error) {
	return s.scanOne(ctx,
		`SELECT id, email, name, password, created_at, updated_at FROM users WHERE id = ?`, id)
}

func (s *Store) scanOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, s.db.Rebind(query), arg).
		Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
