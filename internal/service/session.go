package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/afiqbaharuddin/lemoncode-user-management/internal/cache"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/model"
)

// SessionTTL 會話有效期限：登入後 24 小時，JWT exp 與 Redis TTL 一致，
// 期間內登出會立即刪除會話
const SessionTTL = 24 * time.Hour

const sessionKeyPrefix = "session:"

// SessionClaims 定義 JWT 負載內容，SessionID 對應 Redis 中的會話鍵
type SessionClaims struct {
	UserID    int    `json:"user_id"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

var (
	timeNow         = time.Now
	newSessionID    = uuid.NewString
	parseWithClaims = jwt.ParseWithClaims
)

// IssueSessionToken 建立新會話並簽發令牌
// 令牌對客戶端是不透明字串，有效性取決於 Redis 中 session:<id> 是否存在
func IssueSessionToken(ctx context.Context, rdb cache.Cache, user model.User, ttl time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	sid := newSessionID()
	now := timeNow()
	claims := SessionClaims{
		UserID:    user.ID,
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	if err := rdb.Set(ctx, sessionKeyPrefix+sid, strconv.Itoa(user.ID), ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// ResolveSessionToken 驗證令牌簽章並確認會話仍存在於 Redis，
// 登出或過期後的令牌在這裡被擋下
func ResolveSessionToken(ctx context.Context, rdb cache.Cache, tokenString string) (*SessionClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := parseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	stored, err := rdb.Get(ctx, sessionKeyPrefix+claims.SessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.New("session revoked or expired")
		}
		return nil, err
	}
	if stored != strconv.Itoa(claims.UserID) {
		return nil, errors.New("session user mismatch")
	}
	return claims, nil
}

// RevokeSessionToken 刪除會話使令牌立即失效，重複呼叫不報錯
func RevokeSessionToken(ctx context.Context, rdb cache.Cache, claims *SessionClaims) error {
	return rdb.Del(ctx, sessionKeyPrefix+claims.SessionID).Err()
}
