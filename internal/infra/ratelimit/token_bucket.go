package ratelimit

import (
	"context"
	"sync"
	"time"
)

// TokenBucket 單機版, 沒有 redis 時使用
// 每個 key 一個 bucket, 在 Allow 時依經過時間補充 token
// 閒置到補滿的 bucket 跟新建的一樣, 定期清掉
type TokenBucket struct {
	LimiterConfig
	mu        sync.Mutex
	buckets   map[string]*bucket
	now       func() time.Time
	idleTTL   time.Duration
	lastSweep time.Time
}

type bucket struct {
	tokens       float64
	lastRefilled time.Time
}

func NewTokenBucket(config *LimiterConfig) *TokenBucket {
	cfg := normalize(config)
	return &TokenBucket{
		LimiterConfig: cfg,
		buckets:       make(map[string]*bucket),
		now:           time.Now,
		idleTTL:       refillDuration(cfg),
	}
}

// refillDuration 從空到滿需要的時間, 限制在 1 秒到 1 天之間
func refillDuration(cfg LimiterConfig) time.Duration {
	secs := float64(cfg.Capacity) / cfg.Rate
	switch {
	case secs < 1:
		return time.Second
	case secs > 86400:
		return 24 * time.Hour
	}
	return time.Duration(secs * float64(time.Second))
}

func (t *TokenBucket) Allow(_ context.Context, key string) bool {
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.sweep(now)

	b, ok := t.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(t.Capacity), lastRefilled: now}
		t.buckets[key] = b
	}

	b.tokens = t.countNewTokens(b, now)
	b.lastRefilled = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// sweep 每 idleTTL 最多掃一次
func (t *TokenBucket) sweep(now time.Time) {
	if t.lastSweep.IsZero() {
		t.lastSweep = now
		return
	}
	if now.Sub(t.lastSweep) < t.idleTTL {
		return
	}
	for key, b := range t.buckets {
		if now.Sub(b.lastRefilled) >= t.idleTTL {
			delete(t.buckets, key)
		}
	}
	t.lastSweep = now
}

func (t *TokenBucket) countNewTokens(b *bucket, now time.Time) float64 {
	elapsed := now.Sub(b.lastRefilled)
	newTokens := b.tokens + elapsed.Seconds()*t.Rate
	if newTokens > float64(t.Capacity) {
		newTokens = float64(t.Capacity)
	}
	return newTokens
}

var _ Limiter = (*TokenBucket)(nil)
