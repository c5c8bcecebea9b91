package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/domain/model"
	"gorm.io/gorm"
)

type StoreRepo struct {
	db *DbDao
}

func NewStoreRepo(db *DbDao) *StoreRepo {
	return &StoreRepo{db: db}
}

func (s *StoreRepo) CreateStore(ctx context.Context, store *model.Store) error {
	return s.db.WithContext(ctx).Create(store).Error
}

func (s *StoreRepo) GetStoreByID(ctx context.Context, id string) (*model.Store, error) {
	var store model.Store
	err := s.db.WithContext(ctx).First(&store, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}
