package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/api/dto"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/service"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/util"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderService service.IOrderService
	storeScoped  bool
}

// storeScoped 為 false 時, 依電話查詢訂單會忽略路徑上的 storeId
func NewOrderHandler(orderService service.IOrderService, storeScoped bool) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
		storeScoped:  storeScoped,
	}
}

// CheckoutOptions preflight, CORS header 由 middleware 加上
func (h *OrderHandler) CheckoutOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct{}{})
}

// POST /api/{storeId}/checkout
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckoutDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), chi.URLParam(r, "storeId"), req.ToModel())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// POST /api/{storeId}/checkout/session
func (h *OrderHandler) CheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckoutDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	order, lineItems, err := h.orderService.CreateCheckoutSession(r.Context(), chi.URLParam(r, "storeId"), req.ToModel())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.CheckoutSessionResponse{Order: order, LineItems: lineItems})
}

// GET /api/{storeId}/orders?phone=
// 沒有 query 時讀 body 的 phone
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		var body dto.OrderLookupDTO
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			phone = body.Phone
		}
	}
	h.listOrdersByPhone(w, r, phone)
}

// GET /api/{storeId}/orders/{phone}
func (h *OrderHandler) ListOrdersByPhonePath(w http.ResponseWriter, r *http.Request) {
	h.listOrdersByPhone(w, r, chi.URLParam(r, "phone"))
}

func (h *OrderHandler) listOrdersByPhone(w http.ResponseWriter, r *http.Request, phone string) {
	storeID := ""
	if h.storeScoped {
		storeID = chi.URLParam(r, "storeId")
	}

	orders, err := h.orderService.ListOrdersByPhone(r.Context(), storeID, phone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// PATCH /api/{storeId}/orders/{orderId}
// 以資料庫中的 isPaid 為準翻轉, 不讀 body
func (h *OrderHandler) TogglePaid(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.ToggleOrderPaid(r.Context(), chi.URLParam(r, "orderId"), util.GetUserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// GET /api/{storeId}/admin/orders
func (h *OrderHandler) ListStoreOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListStoreOrders(r.Context(), chi.URLParam(r, "storeId"), util.GetUserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
