package redis_decorator

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/domain/model"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/repository/redis_repo"
	"github.com/rs/zerolog/log"
)

/*
redis 只快取依電話查詢的訂單列表
寫入路徑 (建立訂單, 翻轉付款狀態) 完成後刪除對應的 key, 下一次查詢再從 db 載入
redis 失敗一律降級成直接查 db
*/
type CacheAsideOrderRepo struct {
	db.IOrderRepository
	cache redis_repo.IOrderLookupCache
}

func NewCacheAsideOrderRepo(repo db.IOrderRepository, cache redis_repo.IOrderLookupCache) *CacheAsideOrderRepo {
	if repo == nil {
		panic("NewCacheAsideOrderRepo: order repository cannot be nil")
	}
	if cache == nil {
		panic("NewCacheAsideOrderRepo: lookup cache cannot be nil")
	}
	return &CacheAsideOrderRepo{IOrderRepository: repo, cache: cache}
}

func (r *CacheAsideOrderRepo) ListOrdersByPhone(ctx context.Context, storeID, phone string) ([]model.Order, error) {
	orders, err := r.cache.GetOrders(ctx, storeID, phone)
	if err == nil {
		return orders, nil
	}
	if !errors.Is(err, redis_repo.ErrCacheMiss) {
		log.Error().Err(err).Str("store_id", storeID).Msg("order lookup cache read failed")
	}

	orders, err = r.IOrderRepository.ListOrdersByPhone(ctx, storeID, phone)
	if err != nil {
		return nil, err
	}

	if err := r.cache.SetOrders(ctx, storeID, phone, orders); err != nil {
		log.Error().Err(err).Str("store_id", storeID).Msg("order lookup cache write failed")
	}
	return orders, nil
}

func (r *CacheAsideOrderRepo) CreateOrderWithItems(ctx context.Context, order *model.Order) error {
	if err := r.IOrderRepository.CreateOrderWithItems(ctx, order); err != nil {
		return err
	}
	r.InvalidatePhone(ctx, order.StoreID, order.Phone)
	return nil
}

// InvalidatePhone 刪除店家範圍與全域的查詢快取, 失敗只記錄
func (r *CacheAsideOrderRepo) InvalidatePhone(ctx context.Context, storeID, phone string) {
	if err := r.cache.DeleteOrders(ctx, storeID, phone); err != nil {
		log.Error().Err(err).Str("store_id", storeID).Msg("order lookup cache invalidate failed")
	}
}

var _ db.IOrderRepository = (*CacheAsideOrderRepo)(nil)
