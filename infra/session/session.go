// Package session stores login sessions in redis.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"web-starter/domain"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound         = domain.ErrSessionNotFound
	ErrSessionStoreUnavailable = domain.ErrSessionStoreUnavailable
)

const (
	sessionPrefix      = "session:"
	userSessionsPrefix = "user_sessions:"
)

func sessionKey(token string) string {
	return sessionPrefix + token
}

// SessionManager keeps one key per token (session:<token>) holding the
// session JSON and one set per user (user_sessions:<id>) listing that user's
// tokens.
type SessionManager struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker[any]
}

func NewSessionManager(redisAddr string, password string, db int) (*SessionManager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return NewSessionManagerWithClient(client), nil
}

// NewSessionManagerWithClient wraps an existing client.
func NewSessionManagerWithClient(client *redis.Client) *SessionManager {
	return &SessionManager{
		client:  client,
		breaker: newBreaker("session-redis"),
	}
}

func newBreaker(name string) *gobreaker.CircuitBreaker[any] {
	return gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, redis.Nil)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			zap.L().Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
}

func (sm *SessionManager) Ping(ctx context.Context) error {
	return sm.do(func() error {
		return sm.client.Ping(ctx).Err()
	})
}

func (sm *SessionManager) Close() error {
	return sm.client.Close()
}

func (sm *SessionManager) do(fn func() error) error {
	_, err := sm.breaker.Execute(func() (any, error) {
		return nil, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrSessionStoreUnavailable
	}
	return err
}

func (sm *SessionManager) CreateSession(ctx context.Context, userID, token string, userData map[string]string, duration time.Duration) error {
	session := domain.Session{
		UserID: userID,
		Device: userData["device"],
		Ip:     userData["ip"],
		Expiry: time.Now().Add(duration).UTC(),
	}
	jsonData, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return sm.do(func() error {
		pipe := sm.client.TxPipeline()
		pipe.Set(ctx, sessionKey(token), jsonData, duration)
		pipe.SAdd(ctx, userSessionsPrefix+userID, token)
		pipe.Expire(ctx, userSessionsPrefix+userID, duration)
		_, err := pipe.Exec(ctx)
		return err
	})
}

func (sm *SessionManager) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	var sessionJSON []byte
	err := sm.do(func() error {
		var err error
		sessionJSON, err = sm.client.Get(ctx, sessionKey(token)).Bytes()
		return err
	})
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(sessionJSON, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

// DeleteSession removes one token. Unknown tokens are not an error.
func (sm *SessionManager) DeleteSession(ctx context.Context, token string) error {
	sess, err := sm.GetSession(ctx, token)
	if errors.Is(err, ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return sm.do(func() error {
		pipe := sm.client.TxPipeline()
		pipe.Del(ctx, sessionKey(token))
		pipe.SRem(ctx, userSessionsPrefix+sess.UserID, token)
		_, err := pipe.Exec(ctx)
		return err
	})
}

func (sm *SessionManager) DeleteAllUserSessions(ctx context.Context, userID string) error {
	sessionSetKey := userSessionsPrefix + userID

	var tokens []string
	err := sm.do(func() error {
		var err error
		tokens, err = sm.client.SMembers(ctx, sessionSetKey).Result()
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to get session tokens for user %s: %w", userID, err)
	}
	if len(tokens) == 0 {
		return nil
	}

	err = sm.do(func() error {
		pipe := sm.client.TxPipeline()
		for _, token := range tokens {
			pipe.Del(ctx, sessionKey(token))
		}
		pipe.Del(ctx, sessionSetKey)
		_, err := pipe.Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete sessions for user %s: %w", userID, err)
	}
	return nil
}

func (sm *SessionManager) IsValid(ctx context.Context, token string) bool {
	var exists int64
	err := sm.do(func() error {
		var err error
		exists, err = sm.client.Exists(ctx, sessionKey(token)).Result()
		return err
	})
	return err == nil && exists == 1
}
