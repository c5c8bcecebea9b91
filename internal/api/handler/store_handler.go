package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/api/dto"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/service"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/util"
)

type StoreHandler struct {
	storeService service.IStoreService
}

func NewStoreHandler(storeService service.IStoreService) *StoreHandler {
	if storeService == nil {
		panic("storeService cannot be nil")
	}
	return &StoreHandler{
		storeService: storeService,
	}
}

// POST /api/stores
func (h *StoreHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	// 先檢查身分, 再解析 body
	userID := util.GetUserIDFromContext(r.Context())
	if userID == "" {
		writeError(w, apperr.Unauthenticated("Unauthorized"))
		return
	}

	var req dto.CreateStoreDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	store, err := h.storeService.CreateStore(r.Context(), userID, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, store)
}
