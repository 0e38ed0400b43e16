/*
Package db provides connection pooling, migrations, and queries for the identity database.

The Store covers the users, accounts, and sessions tables. Everything else in the
application (posts, programs, diseases, consultations) is deliberately in-memory.
*/
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// User mirrors one row of the users table.
type User struct {
	ID           pgtype.UUID
	Email        string
	Name         string
	PasswordHash string
	AvatarURL    pgtype.Text
	Verified     bool
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
	LastLoginAt  pgtype.Timestamptz
}

// Session mirrors one row of the sessions table.
type Session struct {
	ID        pgtype.UUID
	UserID    pgtype.UUID
	ExpiresAt pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
}

// Store runs the identity queries against a shared pgx pool.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wraps the given connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Ping verifies database connectivity; used by the health endpoint and cmd/dbcheck.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// CreateUser inserts a new user row together with its credentials account row.
func (s *Store) CreateUser(ctx context.Context, email, name, passwordHash string) (*User, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create user: %w", err)
	}
	defer tx.Rollback(ctx)

	var u User
	err = tx.QueryRow(ctx, `
		INSERT INTO users (email, name, password_hash, verified)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id, email, name, password_hash, avatar_url, verified, created_at, updated_at, last_login_at`,
		email, name, passwordHash,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.AvatarURL, &u.Verified, &u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO accounts (user_id, provider, provider_account_id)
		VALUES ($1, 'credentials', $2)`,
		u.ID, email,
	)
	if err != nil {
		return nil, fmt.Errorf("insert account: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit create user: %w", err)
	}

	return &u, nil
}

// GetUserByEmail looks up a user for sign-in. A nil user with nil error means no match.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.pool.QueryRow(ctx, `
		SELECT id, email, name, password_hash, avatar_url, verified, created_at, updated_at, last_login_at
		FROM users
		WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.AvatarURL, &u.Verified, &u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// GetUserByID fetches a user row by primary key. A nil user with nil error means no match.
func (s *Store) GetUserByID(ctx context.Context, id pgtype.UUID) (*User, error) {
	var u User
	err := s.pool.QueryRow(ctx, `
		SELECT id, email, name, password_hash, avatar_url, verified, created_at, updated_at, last_login_at
		FROM users
		WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.AvatarURL, &u.Verified, &u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

// UpdateLastLogin stamps the user's last sign-in time.
func (s *Store) UpdateLastLogin(ctx context.Context, id pgtype.UUID) error {
	_, err := s.pool.Exec(ctx, `UPDATE users SET last_login_at = now(), updated_at = now() WHERE id = $1`, id)
	return err
}

// CreateSession records a session row for an issued token.
func (s *Store) CreateSession(ctx context.Context, userID pgtype.UUID, expiresAt time.Time) (*Session, error) {
	var sess Session
	err := s.pool.QueryRow(ctx, `
		INSERT INTO sessions (user_id, expires_at)
		VALUES ($1, $2)
		RETURNING id, user_id, expires_at, created_at`,
		userID, expiresAt,
	).Scan(&sess.ID, &sess.UserID, &sess.ExpiresAt, &sess.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return &sess, nil
}

// DeleteSession removes the session row at sign-out. Deleting a missing row is not an error.
func (s *Store) DeleteSession(ctx context.Context, id pgtype.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}
