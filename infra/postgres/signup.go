package postgres

import (
	"context"
	"fmt"
	"web-starter/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func (r *Repository) hashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *Repository) SignUp(ctx context.Context, user *domain.User) (uuid.UUID, error) {
	hashedPassword, err := r.hashPassword(user.Password)
	if err != nil {
		return uuid.Nil, fmt.Errorf("hashing error: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("transaction error: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO users (
			username, email, password, failed_login_attempts
		) VALUES ($1, $2, $3, $4) RETURNING id`

	var userID uuid.UUID
	err = tx.QueryRowContext(ctx, query,
		user.Username,
		user.Email,
		hashedPassword,
		0,
	).Scan(&userID)

	if err != nil {
		if r.isDuplicateKeyError(err) {
			return uuid.Nil, ErrUserExists
		}
		return uuid.Nil, fmt.Errorf("insert error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("commit error: %w", err)
	}

	return userID, nil
}
