package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/domain/model"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/repository/db"
)

// memRepo 記憶體版的 repository, 行為對齊 gorm 版本
type memRepo struct {
	mu        sync.Mutex
	seq       int
	products  map[string]model.Product
	stores    map[string]model.Store
	orders    map[string]model.Order
	createErr error
	casCalls  int

	productsErr    error
	productLookups int
}

func newMemRepo() *memRepo {
	return &memRepo{
		products: make(map[string]model.Product),
		stores:   make(map[string]model.Store),
		orders:   make(map[string]model.Order),
	}
}

func (r *memRepo) nextID(prefix string) string {
	r.seq++
	return prefix + "-" + strconv.Itoa(r.seq)
}

func (r *memRepo) CreateProduct(_ context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		product.ID = r.nextID("product")
	}
	r.products[product.ID] = *product
	return nil
}

func (r *memRepo) GetProductsByIDs(_ context.Context, ids []string) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.productLookups++
	if r.productsErr != nil {
		return nil, r.productsErr
	}
	out := make([]model.Product, 0, len(ids))
	seen := make(map[string]bool)
	for _, id := range ids {
		if p, ok := r.products[id]; ok && !seen[id] {
			seen[id] = true
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memRepo) CreateOrderWithItems(_ context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}

	order.ID = r.nextID("order")
	order.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	order.UpdatedAt = order.CreatedAt
	items := make([]model.OrderItem, len(order.OrderItems))
	for i, item := range order.OrderItems {
		item.ID = r.nextID("item")
		item.OrderID = order.ID
		items[i] = item
	}
	order.OrderItems = items
	r.orders[order.ID] = *order
	return nil
}

func (r *memRepo) GetOrderByID(_ context.Context, id string) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, db.ErrOrderNotFound
	}
	return &order, nil
}

func (r *memRepo) ListOrdersByPhone(_ context.Context, storeID, phone string) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Order, 0)
	for _, o := range r.orders {
		if o.Phone == phone && (storeID == "" || o.StoreID == storeID) {
			out = append(out, o)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *memRepo) ListOrdersByStoreID(_ context.Context, storeID string) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Order, 0)
	for _, o := range r.orders {
		if o.StoreID == storeID {
			out = append(out, o)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *memRepo) CompareAndSwapPaid(_ context.Context, id string, expected bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.casCalls++
	order, ok := r.orders[id]
	if !ok || order.IsPaid != expected {
		return false, nil
	}
	order.IsPaid = !expected
	r.orders[id] = order
	return true, nil
}

func (r *memRepo) CreateStore(_ context.Context, store *model.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if store.ID == "" {
		store.ID = r.nextID("store")
	}
	r.stores[store.ID] = *store
	return nil
}

func (r *memRepo) GetStoreByID(_ context.Context, id string) (*model.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	store, ok := r.stores[id]
	if !ok {
		return nil, db.ErrStoreNotFound
	}
	return &store, nil
}

func (r *memRepo) orderCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

func sortNewestFirst(orders []model.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

var (
	_ db.IOrderRepository   = (*memRepo)(nil)
	_ db.IProductRepository = (*memRepo)(nil)
	_ db.IStoreRepository   = (*memRepo)(nil)

	errDBDown = errors.New("db down")
)
