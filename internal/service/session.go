// File: internal/service/session.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"health-tracker/internal/cache"
	"health-tracker/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// ErrNoSession 表示用戶端沒有有效的 session
var ErrNoSession = errors.New("no active session")

// Session 登入後存放於 Redis 的狀態
type Session struct {
	UserID    int    `json:"user_id"`
	LoggedIn  bool   `json:"logged_in"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// sessionClaims 定義簽入 cookie 的 JWT 負載，僅攜帶 session ID
type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// NewSession 建立 session 紀錄並回傳簽章後的 cookie 值
func NewSession(ctx context.Context, c cache.Cache, secret string, ttl time.Duration, user model.User) (string, error) {
	id := uuid.NewString()
	payload, err := json.Marshal(Session{
		UserID:    user.ID,
		LoggedIn:  true,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	})
	if err != nil {
		return "", fmt.Errorf("NewSession: %w", err)
	}
	if err := c.Set(ctx, sessionKeyPrefix+id, payload, ttl).Err(); err != nil {
		return "", fmt.Errorf("NewSession: %w", err)
	}

	claims := sessionClaims{
		SessionID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GetSession 驗證 cookie 簽章並載入 session，成功時刷新閒置 TTL
func GetSession(ctx context.Context, c cache.Cache, secret, cookieValue string, ttl time.Duration) (*Session, error) {
	id, err := verifySessionID(secret, cookieValue)
	if err != nil {
		return nil, err
	}

	raw, err := c.Get(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("GetSession: %w", err)
	}

	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("GetSession: %w", err)
	}
	if !s.LoggedIn {
		return nil, ErrNoSession
	}

	// 閒置逾時：每次成功存取都往後推
	if ttl > 0 {
		c.Expire(ctx, sessionKeyPrefix+id, ttl)
	}
	return &s, nil
}

// ClearSession 刪除 session 紀錄，cookie 簽章無效時回傳 ErrNoSession
func ClearSession(ctx context.Context, c cache.Cache, secret, cookieValue string) error {
	id, err := verifySessionID(secret, cookieValue)
	if err != nil {
		return err
	}
	if err := c.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("ClearSession: %w", err)
	}
	return nil
}

func verifySessionID(secret, cookieValue string) (string, error) {
	token, err := jwt.ParseWithClaims(cookieValue, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", ErrNoSession
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", ErrNoSession
	}
	return claims.SessionID, nil
}
