package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/api"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/api/handler"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/api/middleware"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/domain/model"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/auth"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/ratelimit"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/pkg/apperr"
	mock_service "github.com/RoyceAzure/lab/ecommerce-admin/internal/service/mock"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testTokenKey = "12345678901234567890123456789012"

type routerFixture struct {
	orderService *mock_service.MockIOrderService
	storeService *mock_service.MockIStoreService
	maker        *auth.JWTMaker
	router       *chi.Mux
}

type routerOption struct {
	storeScoped    bool
	limiter        ratelimit.Limiter
	trustedProxies []*net.IPNet
}

func newRouterFixture(t *testing.T, opt routerOption) *routerFixture {
	ctrl := gomock.NewController(t)

	orderService := mock_service.NewMockIOrderService(ctrl)
	storeService := mock_service.NewMockIStoreService(ctrl)
	maker, err := auth.NewJWTMaker(testTokenKey)
	require.NoError(t, err)

	logger := zerolog.Nop()
	server := api.NewServer(
		handler.NewOrderHandler(orderService, opt.storeScoped),
		handler.NewStoreHandler(storeService),
	)
	return &routerFixture{
		orderService: orderService,
		storeService: storeService,
		maker:        maker,
		router:       SetupRouter(server, maker, opt.limiter, opt.trustedProxies, &logger),
	}
}

func (f *routerFixture) do(t *testing.T, method, target, body, userID string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		token, err := f.maker.CreateToken(userID, time.Minute)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func requireCORS(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	require.Equal(t, "Content-Type, Authorization", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestHealthz(t *testing.T) {
	f := newRouterFixture(t, routerOption{storeScoped: true})
	rec := f.do(t, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestCheckoutPreflight(t *testing.T) {
	f := newRouterFixture(t, routerOption{storeScoped: true})

	for _, path := range []string{"/api/s1/checkout", "/api/s1/checkout/session"} {
		rec := f.do(t, http.MethodOptions, path, "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{}`, rec.Body.String())
		requireCORS(t, rec)
	}
}

func TestCheckout(t *testing.T) {
	f := newRouterFixture(t, routerOption{storeScoped: true})

	f.orderService.EXPECT().
		CreateOrder(gomock.Any(), "s1", gomock.Any()).
		DoAndReturn(func(_ context.Context, storeID string, req model.CheckoutRequest) (*model.Order, error) {
			require.Equal(t, []string{"p1", "p1", "p2"}, req.ProductIDs)
			require.Equal(t, "5551234", req.Phone)
			require.True(t, decimal.RequireFromString("250.5").Equal(req.TotalPrice))
			return &model.Order{ID: "o1", StoreID: storeID, Phone: req.Phone, TotalPrice: req.TotalPrice}, nil
		})

	rec := f.do(t, http.MethodPost, "/api/s1/checkout",
		`{"productIds":["p1","p1","p2"],"phone":"5551234","address":"Av. Reforma 1","totalPrice":250.5}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	requireCORS(t, rec)

	var order map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	require.Equal(t, "o1", order["id"])
	require.Equal(t, "s1", order["storeId"])
	require.Equal(t, false, order["isPaid"])
}

func TestCheckoutErrors(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"missing phone", apperr.Validation(http.StatusForbidden, "Phone is required"), http.StatusForbidden, "Phone is required\n"},
		{"empty product ids", apperr.Validation(http.StatusBadRequest, "Product ids are required"), http.StatusBadRequest, "Product ids are required\n"},
		{"internal", apperr.Internal(context.DeadlineExceeded), http.StatusInternalServerError, "Internal error\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newRouterFixture(t, routerOption{storeScoped: true})
			f.orderService.EXPECT().CreateOrder(gomock.Any(), "s1", gomock.Any()).Return(nil, tc.err)

			rec := f.do(t, http.MethodPost, "/api/s1/checkout", `{"phone":""}`, "")
			require.Equal(t, tc.status, rec.Code)
			require.Equal(t, tc.body, rec.Body.String())
			requireCORS(t, rec)
		})
	}
}

func TestCheckoutMalformedBody(t *testing.T) {
	f := newRouterFixture(t, routerOption{storeScoped: true})

	rec := f.do(t, http.MethodPost, "/api/s1/checkout", `{"phone":`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutRateLimited(t *testing.T) {
	limiter := ratelimit.NewTokenBucket(&ratelimit.LimiterConfig{Capacity: 1, Rate: 0.001})
	f := newRouterFixture(t, routerOption{storeScoped: true, limiter: limiter})
	f.orderService.EXPECT().CreateOrder(gomock.Any(), "s1", gomock.Any()).Return(&model.Order{ID: "o1"}, nil).Times(1)

	body := `{"productIds":["p1"],"phone":"1","address":"a","totalPrice":"1"}`
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/s1/checkout", body, "").Code)

	rec := f.do(t, http.MethodPost, "/api/s1/checkout", body, "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	requireCORS(t, rec)
}

func checkoutFrom(t *testing.T, f *routerFixture, remoteAddr, forwardedFor string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/s1/checkout",
		strings.NewReader(`{"productIds":["p1"],"phone":"1","address":"a","totalPrice":"1"}`))
	req.RemoteAddr = remoteAddr
	req.Header.Set("X-Forwarded-For", forwardedFor)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec.Code
}

func TestCheckoutRateLimitIgnoresSpoofedForwardedFor(t *testing.T) {
	limiter := ratelimit.NewTokenBucket(&ratelimit.LimiterConfig{Capacity: 1, Rate: 0.001})
	f := newRouterFixture(t, routerOption{storeScoped: true, limiter: limiter})
	f.orderService.EXPECT().CreateOrder(gomock.Any(), "s1", gomock.Any()).Return(&model.Order{ID: "o1"}, nil).Times(1)

	passed := 0
	for i := 0; i < 20; i++ {
		if checkoutFrom(t, f, "198.51.100.9:4000", fmt.Sprintf("203.0.113.%d", i)) == http.StatusOK {
			passed++
		}
	}
	require.Equal(t, 1, passed)
}

func TestCheckoutRateLimitBehindTrustedProxy(t *testing.T) {
	proxies, err := middleware.ParseTrustedProxies("10.0.0.0/8")
	require.NoError(t, err)
	limiter := ratelimit.NewTokenBucket(&ratelimit.LimiterConfig{Capacity: 1, Rate: 0.001})
	f := newRouterFixture(t, routerOption{storeScoped: true, limiter: limiter, trustedProxies: proxies})
	f.orderService.EXPECT().CreateOrder(gomock.Any(), "s1", gomock.Any()).Return(&model.Order{ID: "o1"}, nil).Times(2)

	// 同一個 proxy 後面的兩個 client 各自計算
	require.Equal(t, http.StatusOK, checkoutFrom(t, f, "10.0.0.2:4000", "203.0.113.1"))
	require.Equal(t, http.StatusOK, checkoutFrom(t, f, "10.0.0.2:4000", "203.0.113.2"))
	require.Equal(t, http.StatusTooManyRequests, checkoutFrom(t, f, "10.0.0.2:4000", "203.0.113.1"))
}

func TestCheckoutSession(t *testing.T) {
	f := newRouterFixture(t, routerOption{storeScoped: true})
	f.orderService.EXPECT().CreateCheckoutSession(gomock.Any(), "s1", gomock.Any()).Return(
		&model.Order{ID: "o1"},
		[]model.PaymentLineItem{{Currency: "MXN", UnitAmount: 19999, ProductName: "Shirt", ProductID: "p1", Quantity: 1}},
		nil,
	)

	rec := f.do(t, http.MethodPost, "/api/s1/checkout/session", `{"productIds":["p1"],"phone":"1","address":"a","totalPrice":"199.99"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Order     model.Order             `json:"order"`
		LineItems []model.PaymentLineItem `json:"lineItems"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "o1", resp.Order.ID)
	require.Equal(t, int64(19999), resp.LineItems[0].UnitAmount)
}

func TestListOrders(t *testing.T) {
	testCases := []struct {
		name        string
		storeScoped bool
		method      string
		target      string
		body        string
		wantStore   string
		wantPhone   string
	}{
		{"query scoped", true, http.MethodGet, "/api/s1/orders?phone=5551234", "", "s1", "5551234"},
		{"body scoped", true, http.MethodGet, "/api/s1/orders", `{"phone":"5551234"}`, "s1", "5551234"},
		{"path scoped", true, http.MethodGet, "/api/s1/orders/5551234", "", "s1", "5551234"},
		{"path unscoped", false, http.MethodGet, "/api/s1/orders/5551234", "", "", "5551234"},
		{"query unscoped", false, http.MethodGet, "/api/s1/orders?phone=5551234", "", "", "5551234"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newRouterFixture(t, routerOption{storeScoped: tc.storeScoped})
			f.orderService.EXPECT().ListOrdersByPhone(gomock.Any(), tc.wantStore, tc.wantPhone).
				Return([]model.Order{{ID: "o1"}, {ID: "o2"}}, nil)

			rec := f.do(t, tc.method, tc.target, tc.body, "")
			require.Equal(t, http.StatusOK, rec.Code)

			var orders []model.Order
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
			require.Len(t, orders, 2)
		})
	}
}

func TestListOrdersEmptyAndMissingPhone(t *testing.T) {
	f := newRouterFixture(t, routerOption{storeScoped: true})
	f.orderService.EXPECT().ListOrdersByPhone(gomock.Any(), "s1", "000").Return([]model.Order{}, nil)
	f.orderService.EXPECT().ListOrdersByPhone(gomock.Any(), "s1", "").
		Return(nil, apperr.Validation(http.StatusBadRequest, "Phone is required"))

	rec := f.do(t, http.MethodGet, "/api/s1/orders?phone=000", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/s1/orders", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Phone is required\n", rec.Body.String())
}

func TestTogglePaid(t *testing.T) {
	f := newRouterFixture(t, routerOption{storeScoped: true})
	f.orderService.EXPECT().ToggleOrderPaid(gomock.Any(), "o1", "user_1").Return(&model.Order{ID: "o1", IsPaid: true}, nil)

	// body 的 isPaid 不影響結果
	rec := f.do(t, http.MethodPatch, "/api/s1/orders/o1", `{"isPaid":false}`, "user_1")
	require.Equal(t, http.StatusOK, rec.Code)

	var order model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	require.True(t, order.IsPaid)
}

func TestTogglePaidErrors(t *testing.T) {
	f := newRouterFixture(t, routerOption{storeScoped: true})
	f.orderService.EXPECT().ToggleOrderPaid(gomock.Any(), "o1", "").Return(nil, apperr.Unauthenticated("Unauthenticated")).Times(2)
	f.orderService.EXPECT().ToggleOrderPaid(gomock.Any(), "missing", "user_1").Return(nil, apperr.NotFound("Order not found"))

	rec := f.do(t, http.MethodPatch, "/api/s1/orders/o1", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Unauthenticated\n", rec.Body.String())

	// body 不影響身分檢查
	rec = f.do(t, http.MethodPatch, "/api/s1/orders/o1", `{"isPaid":`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodPatch, "/api/s1/orders/missing", "", "user_1")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Order not found\n", rec.Body.String())
}

func TestCreateStore(t *testing.T) {
	f := newRouterFixture(t, routerOption{storeScoped: true})
	f.storeService.EXPECT().CreateStore(gomock.Any(), "user_1", "My Store").Return(&model.Store{ID: "s1", Name: "My Store", UserID: "user_1"}, nil)
	f.storeService.EXPECT().CreateStore(gomock.Any(), "user_1", "").Return(nil, apperr.Validation(http.StatusUnauthorized, "Name is required"))

	rec := f.do(t, http.MethodPost, "/api/stores", `{"name":"My Store"}`, "user_1")
	require.Equal(t, http.StatusOK, rec.Code)
	var store model.Store
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &store))
	require.Equal(t, "s1", store.ID)

	rec = f.do(t, http.MethodPost, "/api/stores", `{"name":"My Store"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Unauthorized\n", rec.Body.String())

	rec = f.do(t, http.MethodPost, "/api/stores", `{}`, "user_1")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Name is required\n", rec.Body.String())

	// 身分優先於 body 格式
	rec = f.do(t, http.MethodPost, "/api/stores", `{"name":`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Unauthorized\n", rec.Body.String())

	rec = f.do(t, http.MethodPost, "/api/stores", `{"name":`, "user_1")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid request body\n", rec.Body.String())
}

func TestListStoreOrders(t *testing.T) {
	f := newRouterFixture(t, routerOption{storeScoped: true})
	f.orderService.EXPECT().ListStoreOrders(gomock.Any(), "s1", "user_1").Return([]model.Order{{ID: "o1"}}, nil)

	rec := f.do(t, http.MethodGet, "/api/s1/admin/orders", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/s1/admin/orders", "", "user_1")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPanicIsRecovered(t *testing.T) {
	f := newRouterFixture(t, routerOption{storeScoped: true})
	f.orderService.EXPECT().ListOrdersByPhone(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string) ([]model.Order, error) {
			panic("boom")
		})

	rec := f.do(t, http.MethodGet, "/api/s1/orders/555", "", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Internal error\n", rec.Body.String())
}

func TestPrintRoutes(t *testing.T) {
	f := newRouterFixture(t, routerOption{storeScoped: true})
	logger := zerolog.Nop()
	require.NoError(t, PrintRoutes(f.router, &logger))
}
