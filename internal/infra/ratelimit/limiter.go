package ratelimit

import "context"

// Limiter 依 key (client ip) 判斷是否放行
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

type LimiterConfig struct {
	Capacity int     // bucket 上限, 也是初始 token 數
	Rate     float64 // tokens/秒
}

func GetDefaultLimiterConfig() LimiterConfig {
	return LimiterConfig{
		Capacity: 20,
		Rate:     5,
	}
}

func normalize(config *LimiterConfig) LimiterConfig {
	if config == nil || config.Capacity <= 0 || config.Rate <= 0 {
		return GetDefaultLimiterConfig()
	}
	return *config
}
