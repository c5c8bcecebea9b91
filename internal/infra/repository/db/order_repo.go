package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/domain/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// CreateOrderWithItems 訂單與訂單項目在同一個事務內寫入
// 任何一筆項目失敗, 訂單本身也不會留下
func (s *OrderRepo) CreateOrderWithItems(ctx context.Context, order *model.Order) error {
	items := order.OrderItems
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Omit(clause.Associations).Create(&items).Error; err != nil {
				return err
			}
		}

		order.OrderItems = items
		return nil
	})
}

// Read - 根據ID查詢訂單
func (s *OrderRepo) GetOrderByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).Preload("OrderItems").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListOrdersByPhone storeID 為空字串時查詢所有店家
func (s *OrderRepo) ListOrdersByPhone(ctx context.Context, storeID, phone string) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	query := s.db.WithContext(ctx).Preload("OrderItems").Where("phone = ?", phone)
	if storeID != "" {
		query = query.Where("store_id = ?", storeID)
	}

	err := query.Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// 查詢店家所有訂單, 含商品資訊供後台列表使用
func (s *OrderRepo) ListOrdersByStoreID(ctx context.Context, storeID string) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	err := s.db.WithContext(ctx).
		Preload("OrderItems.Product").
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// CompareAndSwapPaid 只有在目前 is_paid 仍等於 expected 時才翻轉
// 回傳 false 代表被其他請求搶先更新
func (s *OrderRepo) CompareAndSwapPaid(ctx context.Context, id string, expected bool) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ? AND is_paid = ?", id, expected).
		Update("is_paid", !expected)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
