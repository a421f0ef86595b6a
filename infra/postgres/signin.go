package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"web-starter/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (r *Repository) SignIn(ctx context.Context, identifier, password string) (*domain.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("transaction error: %w", err)
	}
	defer tx.Rollback()

	const query = `
		SELECT id, username, email, password, failed_login_attempts, created_at
		FROM users
		WHERE (username = $1 OR email = $1)`

	var user domain.User
	var hashedPassword string
	var failedAttempts int

	err = tx.QueryRowContext(ctx, query, identifier).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&hashedPassword,
		&failedAttempts,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		if _, err := tx.ExecContext(ctx, "UPDATE users SET failed_login_attempts = $1 WHERE id = $2", failedAttempts+1, user.ID); err != nil {
			zap.L().Warn("failed to update login attempts", zap.String("user_id", user.ID), zap.Error(err))
		} else if err := tx.Commit(); err != nil {
			zap.L().Warn("failed to commit login attempts", zap.String("user_id", user.ID), zap.Error(err))
		}
		return nil, ErrInvalidCredentials
	}

	if _, err := tx.ExecContext(ctx, "UPDATE users SET failed_login_attempts = 0, last_login = NOW() WHERE id = $1", user.ID); err != nil {
		zap.L().Warn("failed to update last login", zap.String("user_id", user.ID), zap.Error(err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit error: %w", err)
	}
	return &user, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrUserNotFound
	}

	const query = `SELECT id, username, email, created_at FROM users WHERE id = $1`

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &user, nil
}
