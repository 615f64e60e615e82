package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// redisClient 是 NewRedisClient 內部需要的最小介面，測試以 stub 取代真實連線
type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

// redisNewClient 建立 redis client，測試可覆寫此變數
var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// NewRedisClient 建立 *redis.Client 並以 Ping 確認連線可用，直接實作 Cache。
// 這個連線承載會話註冊表：session:<id> 鍵存在與否決定令牌是否有效
func NewRedisClient(addr string, password string, db int) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
