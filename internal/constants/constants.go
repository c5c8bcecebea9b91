package constants

import "time"

// for api auth
type ContextKey string

const (
	AuthorizationHeaderKey  ContextKey = "authorization"
	AuthorizationTypeBearer ContextKey = "bearer"
	AuthorizationPayloadKey ContextKey = "authorization_payload"
)

type ENV string

const (
	Debug ENV = "debug"
	Dev   ENV = "development"
	Stag  ENV = "staging"
	Prod  ENV = "production"
)

type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)

// log op tag, 對應各個 route
const (
	OpCheckoutPost   = "CHECKOUT_POST"
	OpOrderPatch     = "ORDER_PATCH"
	OpOrdersGet      = "ORDERS_GET"
	OpStoresPost     = "STORES_POST"
	OpStoreOrdersGet = "STORE_ORDERS_GET"
)

const (
	DefaultCurrency       = "MXN"
	MaxToggleAttempts     = 3
	DefaultLookupCacheTTL = 60
)

// 訂單事件在背景送出, 超過這個時間就放棄
const DefaultEventPublishTimeout = 5 * time.Second
