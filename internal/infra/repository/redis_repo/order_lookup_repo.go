package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("order lookup cache miss")

// IOrderLookupCache 依電話查詢訂單的快取
type IOrderLookupCache interface {
	// GetOrders 未命中時回傳 ErrCacheMiss
	GetOrders(ctx context.Context, storeID, phone string) ([]model.Order, error)
	SetOrders(ctx context.Context, storeID, phone string, orders []model.Order) error
	// DeleteOrders 同時刪除店家範圍與全域的 key
	DeleteOrders(ctx context.Context, storeID, phone string) error
}

/*
	結構:
	order:lookup:store:{storeID}:{phone} -> 訂單 JSON 陣列
	order:lookup:global:{phone}          -> 不分店家的查詢結果
	兩種 key 前綴不同, 任何 storeID 都不會撞到全域 key
*/

type OrderLookupRedisRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewOrderLookupRedisRepo(client *redis.Client, ttl time.Duration) *OrderLookupRedisRepo {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &OrderLookupRedisRepo{client: client, ttl: ttl}
}

func generateOrderLookupKey(storeID, phone string) string {
	if storeID == "" {
		return fmt.Sprintf("order:lookup:global:%s", phone)
	}
	return fmt.Sprintf("order:lookup:store:%s:%s", storeID, phone)
}

func (r *OrderLookupRedisRepo) GetOrders(ctx context.Context, storeID, phone string) ([]model.Order, error) {
	b, err := r.client.Get(ctx, generateOrderLookupKey(storeID, phone)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	orders := make([]model.Order, 0)
	if err := json.Unmarshal(b, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderLookupRedisRepo) SetOrders(ctx context.Context, storeID, phone string, orders []model.Order) error {
	if orders == nil {
		orders = []model.Order{}
	}
	b, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, generateOrderLookupKey(storeID, phone), b, r.ttl).Err()
}

func (r *OrderLookupRedisRepo) DeleteOrders(ctx context.Context, storeID, phone string) error {
	keys := []string{generateOrderLookupKey("", phone)}
	if storeID != "" {
		keys = append(keys, generateOrderLookupKey(storeID, phone))
	}
	return r.client.Del(ctx, keys...).Err()
}

var _ IOrderLookupCache = (*OrderLookupRedisRepo)(nil)
