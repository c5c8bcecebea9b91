package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "ratelimit:checkout:"

// RedisClient 只需要 Eval, 測試可以替換
type RedisClient interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type RedisTokenBucket struct {
	LimiterConfig
	client RedisClient
}

func NewRedisTokenBucket(client RedisClient, config *LimiterConfig) *RedisTokenBucket {
	return &RedisTokenBucket{
		LimiterConfig: normalize(config),
		client:        client,
	}
}

const tokenBucketScript = `
	local key = KEYS[1]
	local capacity = tonumber(ARGV[1])
	local rate = tonumber(ARGV[2])
	local now = tonumber(ARGV[3])

	local bucket = redis.call('HMGET', key, 'tokens', 'last_refill')
	local currentTokens = tonumber(bucket[1])
	local lastRefill = tonumber(bucket[2])

	-- key 不存在時以滿桶初始化
	if currentTokens == nil then
		currentTokens = capacity
		lastRefill = now
	end

	local elapsedSeconds = (now - lastRefill) / 1000000000
	currentTokens = math.min(capacity, currentTokens + elapsedSeconds * rate)

	local allowed = 0
	if currentTokens >= 1 then
		currentTokens = currentTokens - 1
		allowed = 1
	end

	redis.call('HSET', key, 'tokens', currentTokens, 'last_refill', now)
	redis.call('EXPIRE', key, 60)
	return allowed
`

// Allow redis 出錯時放行, 結帳不能因為限流元件故障而停擺
func (r *RedisTokenBucket) Allow(ctx context.Context, key string) bool {
	result, err := r.client.Eval(
		ctx,
		tokenBucketScript,
		[]string{keyPrefix + key},
		r.Capacity,
		r.Rate,
		time.Now().UnixNano(),
	).Int64()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("redis rate limit failed, allowing request")
		return true
	}
	return result == 1
}

var _ Limiter = (*RedisTokenBucket)(nil)
