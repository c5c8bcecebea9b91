package router

import (
	"net"
	"net/http"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/api"
	m "github.com/RoyceAzure/lab/ecommerce-admin/internal/api/middleware"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/auth"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// trustedProxies 為空時一律以連線位址當 client ip
func SetupRouter(server *api.Server, verifier auth.TokenVerifier, limiter ratelimit.Limiter, trustedProxies []*net.IPNet, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件, RealIP 要在 logger 與限流之前
	r.Use(m.TrustedRealIP(trustedProxies))
	r.Use(m.RequestIdMiddleware)
	r.Use(m.AuthPayloadMiddleware(verifier))
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/stores", server.StoreHandler.CreateStore)

		r.Route("/{storeId}", func(r chi.Router) {
			// storefront 結帳, 跨網域
			r.Group(func(r chi.Router) {
				r.Use(m.CheckoutCORS)
				r.Options("/checkout", server.OrderHandler.CheckoutOptions)
				r.Options("/checkout/session", server.OrderHandler.CheckoutOptions)
				r.With(m.RateLimitMiddleware(limiter)).Post("/checkout", server.OrderHandler.Checkout)
				r.With(m.RateLimitMiddleware(limiter)).Post("/checkout/session", server.OrderHandler.CheckoutSession)
			})

			r.Get("/orders", server.OrderHandler.ListOrders)
			r.Get("/orders/{phone}", server.OrderHandler.ListOrdersByPhonePath)
			r.Patch("/orders/{orderId}", server.OrderHandler.TogglePaid)

			r.With(m.AuthMiddleware).Get("/admin/orders", server.OrderHandler.ListStoreOrders)
		})
	})

	return r
}

// PrintRoutes 啟動時列出路由樹
func PrintRoutes(r chi.Routes, logger *zerolog.Logger) error {
	return chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		logger.Debug().Str("method", method).Str("route", route).Msg("route registered")
		return nil
	})
}
