package db

import (
	"context"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/domain/model"
)

type ProductDBRepo struct {
	db *DbDao
}

func NewProductDBRepo(db *DbDao) *ProductDBRepo {
	return &ProductDBRepo{db: db}
}

// GetProductsByIDs 查詢存在的商品, 不存在的id直接略過
// 注意: 這裡沒有依 store 過濾, 跨店商品也會被查出
func (s *ProductDBRepo) GetProductsByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	products := make([]model.Product, 0, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	err := s.db.WithContext(ctx).
		Where("id IN ?", distinct(ids)).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
