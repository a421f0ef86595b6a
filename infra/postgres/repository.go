package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"web-starter/domain"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound       = domain.ErrUserNotFound
	ErrUserExists         = domain.ErrUserExists
	ErrInvalidCredentials = domain.ErrInvalidCredentials
)

// uniqueViolation is the postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

type Repository struct {
	db *sql.DB
}

func NewRepository(connString string) (*Repository, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	zap.L().Info("connected to postgres")

	if err := initDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return NewRepositoryWithDB(db), nil
}

// NewRepositoryWithDB wraps an already opened and migrated database.
func NewRepositoryWithDB(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) isDuplicateKeyError(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}
