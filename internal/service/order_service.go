package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/constants"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/domain/model"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/producer"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/pkg/apperr"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrToggleConflict = errors.New("order payment state kept changing, giving up")
)

//go:generate mockgen -source=order_service.go -destination=mock/mock_order_service.go -package=mock_service

type IOrderService interface {
	CreateOrder(ctx context.Context, storeID string, req model.CheckoutRequest) (*model.Order, error)
	BuildPaymentLineItems(ctx context.Context, productIDs []string) ([]model.PaymentLineItem, error)
	CreateCheckoutSession(ctx context.Context, storeID string, req model.CheckoutRequest) (*model.Order, []model.PaymentLineItem, error)
	ToggleOrderPaid(ctx context.Context, orderID, actorID string) (*model.Order, error)
	ListOrdersByPhone(ctx context.Context, storeID, phone string) ([]model.Order, error)
	ListStoreOrders(ctx context.Context, storeID, actorID string) ([]model.Order, error)
}

// LookupInvalidator 付款狀態改變後清掉電話查詢快取
type LookupInvalidator interface {
	InvalidatePhone(ctx context.Context, storeID, phone string)
}

type OrderService struct {
	orderRepo   db.IOrderRepository
	productRepo db.IProductRepository
	storeRepo   db.IStoreRepository
	publisher   producer.OrderEventPublisher
	invalidator LookupInvalidator
	currency    string

	publishTimeout time.Duration
	inflight       sync.WaitGroup
}

type OrderServiceOption func(*OrderService)

func WithCurrency(currency string) OrderServiceOption {
	return func(s *OrderService) {
		if currency != "" {
			s.currency = currency
		}
	}
}

func WithLookupInvalidator(invalidator LookupInvalidator) OrderServiceOption {
	return func(s *OrderService) {
		s.invalidator = invalidator
	}
}

// WithPublishTimeout 背景送出訂單事件的時間上限
func WithPublishTimeout(timeout time.Duration) OrderServiceOption {
	return func(s *OrderService) {
		if timeout > 0 {
			s.publishTimeout = timeout
		}
	}
}

func NewOrderService(orderRepo db.IOrderRepository, productRepo db.IProductRepository, storeRepo db.IStoreRepository, publisher producer.OrderEventPublisher, opts ...OrderServiceOption) *OrderService {
	if publisher == nil {
		publisher = producer.NoopPublisher{}
	}
	s := &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		storeRepo:   storeRepo,
		publisher:   publisher,
		currency:    constants.DefaultCurrency,

		publishTimeout: constants.DefaultEventPublishTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

/*
結帳建立訂單
檢查順序: phone, address, totalPrice, productIds
找不到的商品直接略過, 重複的商品id會產生多筆訂單項目
totalPrice 照呼叫端給的存, 不依商品價格重算
*/
func (o *OrderService) CreateOrder(ctx context.Context, storeID string, req model.CheckoutRequest) (*model.Order, error) {
	if err := validateCheckout(req); err != nil {
		return nil, err
	}

	products, err := o.resolveProducts(ctx, req.ProductIDs)
	if err != nil {
		log.Error().Err(err).Str("op", constants.OpCheckoutPost).Str("store_id", storeID).Msg("resolve products failed")
		return nil, apperr.Internal(err)
	}
	return o.createOrder(ctx, storeID, req, products)
}

// createOrder products 為已解析的商品, 不在裡面的 id 不建立訂單項目
func (o *OrderService) createOrder(ctx context.Context, storeID string, req model.CheckoutRequest, products map[string]model.Product) (*model.Order, error) {
	items := make([]model.OrderItem, 0, len(req.ProductIDs))
	for _, id := range req.ProductIDs {
		if _, ok := products[id]; ok {
			items = append(items, model.OrderItem{ProductID: id})
		}
	}

	order := &model.Order{
		StoreID:    storeID,
		Phone:      req.Phone,
		Address:    req.Address,
		TotalPrice: req.TotalPrice,
		IsPaid:     false,
		OrderItems: items,
	}
	if err := o.orderRepo.CreateOrderWithItems(ctx, order); err != nil {
		log.Error().Err(err).Str("op", constants.OpCheckoutPost).Str("store_id", storeID).Msg("create order failed")
		return nil, apperr.Internal(err)
	}

	o.publishAsync(ctx, constants.OpCheckoutPost, order, o.publisher.PublishOrderCreated)
	return order, nil
}

func validateCheckout(req model.CheckoutRequest) error {
	switch {
	case req.Phone == "":
		return apperr.Validation(http.StatusForbidden, "Phone is required")
	case req.Address == "":
		return apperr.Validation(http.StatusForbidden, "Address is required")
	case req.TotalPrice.IsZero():
		return apperr.Validation(http.StatusForbidden, "Total price is required")
	case len(req.ProductIDs) == 0:
		return apperr.Validation(http.StatusBadRequest, "Product ids are required")
	}
	return nil
}

// BuildPaymentLineItems 金額用資料庫的商品價格, 以最小貨幣單位表示
func (o *OrderService) BuildPaymentLineItems(ctx context.Context, productIDs []string) ([]model.PaymentLineItem, error) {
	if len(productIDs) == 0 {
		return nil, apperr.Validation(http.StatusBadRequest, "Product ids are required")
	}

	products, err := o.resolveProducts(ctx, productIDs)
	if err != nil {
		log.Error().Err(err).Str("op", constants.OpCheckoutPost).Msg("resolve products failed")
		return nil, apperr.Internal(err)
	}
	return o.lineItems(productIDs, products), nil
}

func (o *OrderService) lineItems(productIDs []string, products map[string]model.Product) []model.PaymentLineItem {
	lineItems := make([]model.PaymentLineItem, 0, len(productIDs))
	for _, id := range productIDs {
		product, ok := products[id]
		if !ok {
			continue
		}
		lineItems = append(lineItems, model.PaymentLineItem{
			Currency:    o.currency,
			UnitAmount:  toMinorUnits(product.Price),
			ProductName: product.Name,
			ProductID:   product.ID,
			Quantity:    1,
		})
	}
	return lineItems
}

func toMinorUnits(price decimal.Decimal) int64 {
	return price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// CreateCheckoutSession 商品只查一次, 訂單寫入後不會再有失敗的步驟
func (o *OrderService) CreateCheckoutSession(ctx context.Context, storeID string, req model.CheckoutRequest) (*model.Order, []model.PaymentLineItem, error) {
	if err := validateCheckout(req); err != nil {
		return nil, nil, err
	}

	products, err := o.resolveProducts(ctx, req.ProductIDs)
	if err != nil {
		log.Error().Err(err).Str("op", constants.OpCheckoutPost).Str("store_id", storeID).Msg("resolve products failed")
		return nil, nil, apperr.Internal(err)
	}
	lineItems := o.lineItems(req.ProductIDs, products)

	order, err := o.createOrder(ctx, storeID, req, products)
	if err != nil {
		return nil, nil, err
	}
	return order, lineItems, nil
}

func (o *OrderService) resolveProducts(ctx context.Context, ids []string) (map[string]model.Product, error) {
	products, err := o.productRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	m := make(map[string]model.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return m, nil
}

/*
訂單事件在背景送出, 不拖住請求
ctx 只取值不繼承取消, 另外加上 publishTimeout
*/
func (o *OrderService) publishAsync(ctx context.Context, op string, order *model.Order, publish func(context.Context, *model.Order) error) {
	snapshot := *order
	o.inflight.Add(1)
	go func() {
		defer o.inflight.Done()
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.publishTimeout)
		defer cancel()
		if err := publish(pubCtx, &snapshot); err != nil {
			log.Error().Err(err).Str("op", op).Str("order_id", snapshot.ID).Msg("publish order event failed")
		}
	}()
}

// Wait 等背景的事件送完, 關閉 producer 前呼叫
func (o *OrderService) Wait() {
	o.inflight.Wait()
}

/*
翻轉付款狀態
以資料庫目前的值為準 (不信任呼叫端給的 isPaid), 條件更新 is_paid = 目前值
更新 0 筆代表有其他請求先改了, 重新讀取後再試, 最多 MaxToggleAttempts 次
*/
func (o *OrderService) ToggleOrderPaid(ctx context.Context, orderID, actorID string) (*model.Order, error) {
	if actorID == "" {
		return nil, apperr.Unauthenticated("Unauthenticated")
	}
	if orderID == "" {
		return nil, apperr.Validation(http.StatusBadRequest, "Order id is required")
	}

	for attempt := 0; attempt < constants.MaxToggleAttempts; attempt++ {
		order, err := o.orderRepo.GetOrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, db.ErrOrderNotFound) {
				return nil, apperr.NotFound("Order not found")
			}
			log.Error().Err(err).Str("op", constants.OpOrderPatch).Str("order_id", orderID).Msg("get order failed")
			return nil, apperr.Internal(err)
		}

		swapped, err := o.orderRepo.CompareAndSwapPaid(ctx, order.ID, order.IsPaid)
		if err != nil {
			log.Error().Err(err).Str("op", constants.OpOrderPatch).Str("order_id", orderID).Msg("toggle order paid failed")
			return nil, apperr.Internal(err)
		}
		if !swapped {
			continue
		}

		order.IsPaid = !order.IsPaid
		o.publishAsync(ctx, constants.OpOrderPatch, order, o.publisher.PublishOrderPaidToggled)
		if o.invalidator != nil {
			o.invalidator.InvalidatePhone(ctx, order.StoreID, order.Phone)
		}
		return order, nil
	}

	log.Error().Err(ErrToggleConflict).Str("op", constants.OpOrderPatch).Str("order_id", orderID).Int("attempts", constants.MaxToggleAttempts).Msg("toggle order paid failed")
	return nil, apperr.Internal(ErrToggleConflict)
}

// ListOrdersByPhone storeID 為空字串時查詢所有店家
func (o *OrderService) ListOrdersByPhone(ctx context.Context, storeID, phone string) ([]model.Order, error) {
	if phone == "" {
		return nil, apperr.Validation(http.StatusBadRequest, "Phone is required")
	}

	orders, err := o.orderRepo.ListOrdersByPhone(ctx, storeID, phone)
	if err != nil {
		log.Error().Err(err).Str("op", constants.OpOrdersGet).Str("store_id", storeID).Msg("list orders failed")
		return nil, apperr.Internal(err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// ListStoreOrders 後台訂單列表, 只有店家擁有者可以看
func (o *OrderService) ListStoreOrders(ctx context.Context, storeID, actorID string) ([]model.Order, error) {
	if actorID == "" {
		return nil, apperr.Unauthenticated("Unauthenticated")
	}

	store, err := o.storeRepo.GetStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, db.ErrStoreNotFound) {
			return nil, apperr.NotFound("Store not found")
		}
		log.Error().Err(err).Str("op", constants.OpStoreOrdersGet).Str("store_id", storeID).Msg("get store failed")
		return nil, apperr.Internal(err)
	}
	if store.UserID != actorID {
		return nil, apperr.NotFound("Store not found")
	}

	orders, err := o.orderRepo.ListOrdersByStoreID(ctx, storeID)
	if err != nil {
		log.Error().Err(err).Str("op", constants.OpStoreOrdersGet).Str("store_id", storeID).Msg("list store orders failed")
		return nil, apperr.Internal(err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

var _ IOrderService = (*OrderService)(nil)
