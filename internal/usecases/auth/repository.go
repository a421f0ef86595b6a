package usecase

import (
	"context"
	"time"
	"web-starter/domain"

	"github.com/google/uuid"
)

type PostgresRepository interface {
	SignUp(ctx context.Context, user *domain.User) (uuid.UUID, error)
	SignIn(ctx context.Context, identifier, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}

type SessionManager interface {
	CreateSession(ctx context.Context, userID, token string, userData map[string]string, duration time.Duration) error
	DeleteSession(ctx context.Context, token string) error
	DeleteAllUserSessions(ctx context.Context, userID string) error
}
