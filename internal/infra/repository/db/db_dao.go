package db

import (
	"errors"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/domain/model"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrStoreNotFound = errors.New("store not found")
)

type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

// 初始化db schema
// 冪等性, 依外鍵順序建立
func (d *DbDao) InitMigrate() error {
	return d.AutoMigrate(
		&model.Store{},
		&model.Billboard{},
		&model.Category{},
		&model.Color{},
		&model.Size{},
		&model.Product{},
		&model.Image{},
		&model.Order{},
		&model.OrderItem{},
	)
}

func (d *DbDao) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
