// Package postgres provides the PostgreSQL store implementation.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tinyapp/tinyapp/internal/model"
	"github.com/tinyapp/tinyapp/internal/store"
)

// Store is a PostgreSQL implementation of store.Store backed by a pgx pool.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a new Store with a connection pool and ensures the schema
// exists.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Connection pool settings
	config.MaxConns = 10
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// ensureSchema creates the two tables if they do not exist yet.
func (s *Store) ensureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS urls (
			short_code TEXT PRIMARY KEY,
			long_url   TEXT NOT NULL,
			owner_id   TEXT NOT NULL REFERENCES users (id),
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_urls_owner_id ON urls (owner_id);
	`
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// CreateUser inserts a new user. The unique index on email makes the
// duplicate check atomic.
func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrEmailExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by their ID.
func (s *Store) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`

	var user model.User
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by their email address (exact match).
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`

	var user model.User
	err := s.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// CreateURL inserts a new URL record. The primary key on short_code makes
// the collision check atomic.
func (s *Store) CreateURL(ctx context.Context, url *model.URL) error {
	query := `
		INSERT INTO urls (short_code, long_url, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.pool.Exec(ctx, query,
		url.ShortCode,
		url.LongURL,
		url.OwnerID,
		url.CreatedAt,
		url.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrCodeExists
		}
		return fmt.Errorf("failed to create url: %w", err)
	}

	return nil
}

// GetURL retrieves a URL record by its short code.
func (s *Store) GetURL(ctx context.Context, shortCode string) (*model.URL, error) {
	query := `
		SELECT short_code, long_url, owner_id, created_at, updated_at
		FROM urls
		WHERE short_code = $1
	`

	var url model.URL
	err := s.pool.QueryRow(ctx, query, shortCode).Scan(
		&url.ShortCode,
		&url.LongURL,
		&url.OwnerID,
		&url.CreatedAt,
		&url.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrURLNotFound
		}
		return nil, fmt.Errorf("failed to get url: %w", err)
	}

	return &url, nil
}

// UpdateURL overwrites the mutable fields of the record.
func (s *Store) UpdateURL(ctx context.Context, url *model.URL) error {
	query := `
		UPDATE urls
		SET long_url = $2, updated_at = $3
		WHERE short_code = $1
	`

	tag, err := s.pool.Exec(ctx, query, url.ShortCode, url.LongURL, url.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update url: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrURLNotFound
	}

	return nil
}

// DeleteURL removes the record for the short code.
func (s *Store) DeleteURL(ctx context.Context, shortCode string) error {
	query := `DELETE FROM urls WHERE short_code = $1`

	tag, err := s.pool.Exec(ctx, query, shortCode)
	if err != nil {
		return fmt.Errorf("failed to delete url: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrURLNotFound
	}

	return nil
}

// ListURLsByOwner returns all records owned by ownerID keyed by short code.
func (s *Store) ListURLsByOwner(ctx context.Context, ownerID string) (map[string]*model.URL, error) {
	query := `
		SELECT short_code, long_url, owner_id, created_at, updated_at
		FROM urls
		WHERE owner_id = $1
	`

	rows, err := s.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list urls: %w", err)
	}
	defer rows.Close()

	result := make(map[string]*model.URL)
	for rows.Next() {
		var url model.URL
		if err := rows.Scan(
			&url.ShortCode,
			&url.LongURL,
			&url.OwnerID,
			&url.CreatedAt,
			&url.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan url row: %w", err)
		}
		result[url.ShortCode] = &url
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate url rows: %w", err)
	}

	return result, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the database connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint
// violation (error code 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
