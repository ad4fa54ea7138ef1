package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisRateCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

func incrWithTTL(ctx context.Context, client redisRateCounter, key string, ttl time.Duration) (int64, error) {
	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		_ = client.Expire(ctx, key, ttl).Err()
	}
	return count, nil
}

// LoginLimiter 按邮箱统计每小时的登录尝试次数。
// Redis 不可用时放行请求，仅把错误交给调用方记录。
type LoginLimiter struct {
	client redisRateCounter
	limit  int64
	now    func() time.Time
}

// NewLoginLimiter 构造限流器；limit <= 0 时返回 nil（不限流）。
func NewLoginLimiter(client redisRateCounter, limit int) *LoginLimiter {
	if client == nil || limit <= 0 {
		return nil
	}
	return &LoginLimiter{client: client, limit: int64(limit), now: time.Now}
}

// Allow 记录一次尝试并报告是否仍在配额内。
func (l *LoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	if l == nil {
		return true, nil
	}
	hour := l.now().UTC().Format("2006010215")
	key := fmt.Sprintf("rate:login:%s:%s", strings.ToLower(strings.TrimSpace(email)), hour)

	count, err := incrWithTTL(ctx, l.client, key, time.Hour)
	if err != nil {
		return true, fmt.Errorf("count login attempt: %w", err)
	}
	return count <= l.limit, nil
}
