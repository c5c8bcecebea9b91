package service

import (
	"context"
	"net/http"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/constants"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/domain/model"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/pkg/apperr"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -source=store_service.go -destination=mock/mock_store_service.go -package=mock_service

type IStoreService interface {
	CreateStore(ctx context.Context, userID, name string) (*model.Store, error)
}

type StoreService struct {
	storeRepo db.IStoreRepository
}

func NewStoreService(storeRepo db.IStoreRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo}
}

// CreateStore 缺少名稱也回 401, 與既有後台前端的判斷一致
func (s *StoreService) CreateStore(ctx context.Context, userID, name string) (*model.Store, error) {
	if userID == "" {
		return nil, apperr.Unauthenticated("Unauthorized")
	}
	if name == "" {
		return nil, apperr.Validation(http.StatusUnauthorized, "Name is required")
	}

	store := &model.Store{Name: name, UserID: userID}
	if err := s.storeRepo.CreateStore(ctx, store); err != nil {
		log.Error().Err(err).Str("op", constants.OpStoresPost).Str("user_id", userID).Msg("create store failed")
		return nil, apperr.Internal(err)
	}
	return store, nil
}

var _ IStoreService = (*StoreService)(nil)
