package bootstrap

import (
	"context"
	"time"
	"web-starter/domain"
	"web-starter/internal/config"
	"web-starter/internal/initializer"

	"github.com/google/uuid"
)

type SessionManager interface {
	CreateSession(ctx context.Context, userID, token string, userData map[string]string, duration time.Duration) error
	DeleteSession(ctx context.Context, token string) error
	DeleteAllUserSessions(ctx context.Context, userID string) error
	GetSession(ctx context.Context, token string) (*domain.Session, error)
	Ping(ctx context.Context) error
	Close() error
}

func InitSessionRedis(config *config.Config) (SessionManager, error) {
	sm, err := initializer.InitSessionRedis(config)
	if err != nil {
		return nil, err
	}
	return sm, nil
}

type PostgresRepository interface {
	SignUp(ctx context.Context, user *domain.User) (uuid.UUID, error)
	SignIn(ctx context.Context, identifier, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	Ping(ctx context.Context) error
	Close() error
}
