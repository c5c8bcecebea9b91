package db

import (
	"context"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/domain/model"
	"gorm.io/gorm"
)

//go:generate mockgen -source=unified_db.go -destination=mock/mock_repository.go -package=mock_db

// UnifiedDB 統一的資料庫介面
type UnifiedDB interface {
	GetDB() *gorm.DB
	InitMigrate() error
	Close() error

	IProductRepository
	IOrderRepository
	IStoreRepository
}

// IProductRepository Product 相關操作介面
type IProductRepository interface {
	GetProductsByIDs(ctx context.Context, ids []string) ([]model.Product, error)
}

// IOrderRepository Order 相關操作介面
type IOrderRepository interface {
	CreateOrderWithItems(ctx context.Context, order *model.Order) error
	GetOrderByID(ctx context.Context, id string) (*model.Order, error)
	ListOrdersByPhone(ctx context.Context, storeID, phone string) ([]model.Order, error)
	ListOrdersByStoreID(ctx context.Context, storeID string) ([]model.Order, error)
	CompareAndSwapPaid(ctx context.Context, id string, expected bool) (bool, error)
}

// IStoreRepository Store 相關操作介面
type IStoreRepository interface {
	CreateStore(ctx context.Context, store *model.Store) error
	GetStoreByID(ctx context.Context, id string) (*model.Store, error)
}

// UnifiedDBImpl 統一資料庫實現
type UnifiedDBImpl struct {
	dbDao *DbDao
	*ProductDBRepo
	*OrderRepo
	*StoreRepo
}

func NewUnifiedDB(db *gorm.DB) *UnifiedDBImpl {
	dbDao := NewDbDao(db)
	return &UnifiedDBImpl{
		dbDao:         dbDao,
		ProductDBRepo: NewProductDBRepo(dbDao),
		OrderRepo:     NewOrderRepo(dbDao),
		StoreRepo:     NewStoreRepo(dbDao),
	}
}

func (u *UnifiedDBImpl) GetDB() *gorm.DB {
	return u.dbDao.DB
}

func (u *UnifiedDBImpl) InitMigrate() error {
	return u.dbDao.InitMigrate()
}

func (u *UnifiedDBImpl) Close() error {
	return u.dbDao.Close()
}

var (
	_ UnifiedDB          = (*UnifiedDBImpl)(nil)
	_ IProductRepository = (*ProductDBRepo)(nil)
	_ IOrderRepository   = (*OrderRepo)(nil)
	_ IStoreRepository   = (*StoreRepo)(nil)
)
