package middleware

import (
	"context"
	"web-starter/domain"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	sessionKey
	sessionTokenKey
)

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// SessionFromContext returns the session Authenticate attached.
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*domain.Session)
	return s, ok && s != nil
}

func SessionTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenKey).(string)
	return token
}

// WithSession is used by tests and by callers that authenticate outside
// of fiber.
func WithSession(ctx context.Context, token string, s *domain.Session) context.Context {
	ctx = context.WithValue(ctx, sessionKey, s)
	return context.WithValue(ctx, sessionTokenKey, token)
}
