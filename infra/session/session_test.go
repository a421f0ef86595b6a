package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*SessionManager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	sm, err := NewSessionManager(mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { sm.Close() })
	return sm, mr
}

func TestCreateAndGetSession(t *testing.T) {
	sm, mr := newTestManager(t)
	ctx := context.Background()

	err := sm.CreateSession(ctx, "user-1", "tok-1", map[string]string{"device": "curl", "ip": "10.0.0.1"}, time.Hour)
	require.NoError(t, err)

	sess, err := sm.GetSession(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", sess.UserID)
	assert.Equal(t, "curl", sess.Device)
	assert.Equal(t, "10.0.0.1", sess.Ip)
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.Expiry, time.Minute)

	assert.True(t, sm.IsValid(ctx, "tok-1"))
	members, err := mr.SMembers("user_sessions:user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-1"}, members)
	assert.Equal(t, time.Hour, mr.TTL("session:tok-1"))

	mr.FastForward(2 * time.Hour)
	assert.False(t, sm.IsValid(ctx, "tok-1"))
	_, err = sm.GetSession(ctx, "tok-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestTokensCannotReachUserSets(t *testing.T) {
	sm, mr := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, sm.CreateSession(ctx, "user-1", "tok-1", nil, time.Hour))
	require.True(t, mr.Exists("user_sessions:user-1"))

	assert.False(t, sm.IsValid(ctx, "user_sessions:user-1"))
	_, err := sm.GetSession(ctx, "user_sessions:user-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	require.NoError(t, sm.DeleteSession(ctx, "user_sessions:user-1"))
	assert.True(t, mr.Exists("user_sessions:user-1"))
}

func TestDeleteSession(t *testing.T) {
	sm, mr := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, sm.CreateSession(ctx, "user-1", "tok-1", nil, time.Hour))
	require.NoError(t, sm.CreateSession(ctx, "user-1", "tok-2", nil, time.Hour))

	require.NoError(t, sm.DeleteSession(ctx, "tok-1"))

	assert.False(t, sm.IsValid(ctx, "tok-1"))
	assert.True(t, sm.IsValid(ctx, "tok-2"))
	members, err := mr.SMembers("user_sessions:user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-2"}, members)

	assert.NoError(t, sm.DeleteSession(ctx, "unknown"))
}

func TestDeleteAllUserSessions(t *testing.T) {
	sm, mr := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, sm.CreateSession(ctx, "user-1", "tok-1", nil, time.Hour))
	require.NoError(t, sm.CreateSession(ctx, "user-1", "tok-2", nil, time.Hour))
	require.NoError(t, sm.CreateSession(ctx, "user-2", "tok-3", nil, time.Hour))

	require.NoError(t, sm.DeleteAllUserSessions(ctx, "user-1"))

	assert.False(t, sm.IsValid(ctx, "tok-1"))
	assert.False(t, sm.IsValid(ctx, "tok-2"))
	assert.True(t, sm.IsValid(ctx, "tok-3"))
	assert.False(t, mr.Exists("user_sessions:user-1"))

	assert.NoError(t, sm.DeleteAllUserSessions(ctx, "nobody"))
}

func TestBreakerOpensWhenRedisIsDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	sm := NewSessionManagerWithClient(client)
	t.Cleanup(func() { sm.Close() })
	ctx := context.Background()

	mr.Close()

	var lastErr error
	for i := 0; i < 6; i++ {
		_, lastErr = sm.GetSession(ctx, "tok")
	}
	assert.ErrorIs(t, lastErr, ErrSessionStoreUnavailable)
	assert.False(t, sm.IsValid(ctx, "tok"))
}
