package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"health-tracker/internal/cache"
	"health-tracker/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-session-secret"

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	stored := map[string]string{}

	c := &cache.FakeCache{
		SetFn: func(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
			require.Equal(t, time.Hour, ttl)
			stored[key] = string(value.([]byte))
			return redis.NewStatusResult("OK", nil)
		},
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			v, ok := stored[key]
			if !ok {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(v, nil)
		},
		ExpireFn: func(_ context.Context, key string, ttl time.Duration) *redis.BoolCmd {
			return redis.NewBoolResult(true, nil)
		},
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			for _, k := range keys {
				delete(stored, k)
			}
			return redis.NewIntResult(1, nil)
		},
	}

	user := model.User{ID: 7, FirstName: "Jane", LastName: "Roe", Email: "jane@example.com"}
	cookie, err := NewSession(ctx, c, testSecret, time.Hour, user)
	require.NoError(t, err)
	require.NotEmpty(t, cookie)
	require.Len(t, stored, 1)

	s, err := GetSession(ctx, c, testSecret, cookie, time.Hour)
	require.NoError(t, err)
	require.Equal(t, 7, s.UserID)
	require.True(t, s.LoggedIn)
	require.Equal(t, "Jane", s.FirstName)
	require.Equal(t, "Roe", s.LastName)
	require.Equal(t, "jane@example.com", s.Email)

	require.NoError(t, ClearSession(ctx, c, testSecret, cookie))
	require.Empty(t, stored)

	_, err = GetSession(ctx, c, testSecret, cookie, time.Hour)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestGetSessionBadCookie(t *testing.T) {
	ctx := context.Background()
	c := &cache.FakeCache{}

	_, err := GetSession(ctx, c, testSecret, "garbage", time.Hour)
	require.ErrorIs(t, err, ErrNoSession)

	// 以其他密鑰簽章的 cookie 必須被拒絕
	other, err := NewSession(ctx, &cache.FakeCache{
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("OK", nil)
		},
	}, "other-secret", time.Hour, model.User{ID: 1})
	require.NoError(t, err)

	_, err = GetSession(ctx, c, testSecret, other, time.Hour)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestGetSessionLoggedOutRecord(t *testing.T) {
	ctx := context.Background()
	var key string
	c := &cache.FakeCache{
		SetFn: func(_ context.Context, k string, _ any, _ time.Duration) *redis.StatusCmd {
			key = k
			return redis.NewStatusResult("OK", nil)
		},
	}
	cookie, err := NewSession(ctx, c, testSecret, time.Hour, model.User{ID: 1})
	require.NoError(t, err)
	require.NotEmpty(t, key)

	payload, _ := json.Marshal(Session{UserID: 1, LoggedIn: false})
	c.GetFn = func(_ context.Context, k string) *redis.StringCmd {
		require.Equal(t, key, k)
		return redis.NewStringResult(string(payload), nil)
	}

	_, err = GetSession(ctx, c, testSecret, cookie, time.Hour)
	require.ErrorIs(t, err, ErrNoSession)
}
