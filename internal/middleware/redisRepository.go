package middleware

import (
	"context"
	"web-starter/domain"
)

type SessionManagerType interface {
	GetSession(ctx context.Context, key string) (*domain.Session, error)
}
