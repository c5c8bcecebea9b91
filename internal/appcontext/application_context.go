package appcontext

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/api/handler"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/api/middleware"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/config"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/auth"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/producer"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/ratelimit"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/repository/redis_decorator"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ApplicationContext struct {
	Cf     *config.Config
	Logger *zerolog.Logger

	DbDao       *db.UnifiedDBImpl
	OrderRepo   db.IOrderRepository
	RedisClient *redis.Client

	Producer       producer.Producer
	OrderPublisher producer.OrderEventPublisher
	TokenMaker     *auth.JWTMaker
	Limiter        ratelimit.Limiter
	TrustedProxies []*net.IPNet

	OrderService service.IOrderService
	StoreService service.IStoreService

	OrderHandler *handler.OrderHandler
	StoreHandler *handler.StoreHandler
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}

	if err := app.Init(); err != nil {
		app.Shutdown(context.Background())
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	app.setUpLogger()

	steps := []struct {
		name string
		fn   func() error
	}{
		{"database", app.setUpDbDao},
		{"redis", app.setUpRedis},
		{"kafka producer", app.setUpProducer},
		{"token maker", app.setUpTokenMaker},
		{"rate limiter", app.setUpLimiter},
		{"services", app.setUpServices},
		{"handlers", app.setUpHandlers},
	}

	for _, step := range steps {
		app.Logger.Info().Msgf("Start setup %s", step.name)
		if err := step.fn(); err != nil {
			return fmt.Errorf("setup %s: %w", step.name, err)
		}
		app.Logger.Info().Msgf("Finish setup %s", step.name)
	}
	return nil
}

// debug 模式用 console writer, 其餘輸出 json
func (app *ApplicationContext) setUpLogger() {
	zerolog.TimeFieldFormat = time.RFC3339
	var logger zerolog.Logger
	if app.Cf.IsDebug() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(os.Stdout).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger
	app.Logger = &logger
}

func (app *ApplicationContext) setUpDbDao() error {
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbDao = db.NewUnifiedDB(conn)
	app.OrderRepo = app.DbDao.OrderRepo
	return app.DbDao.InitMigrate()
}

// REDIS_ADDR 為空時不啟用快取, 限流改用單機版
func (app *ApplicationContext) setUpRedis() error {
	if app.Cf.RedisAddr == "" {
		app.Logger.Warn().Msg("REDIS_ADDR not set, order lookup cache disabled")
		return nil
	}

	client, err := redis_repo.GetRedisClient(app.Cf.RedisAddr,
		redis_repo.WithPassword(app.Cf.RedisPassword),
		redis_repo.WithDB(app.Cf.RedisDB),
	)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redis_repo.Ping(ctx, client); err != nil {
		return err
	}
	app.RedisClient = client

	cache := redis_repo.NewOrderLookupRedisRepo(client, time.Duration(app.Cf.OrderLookupCacheTTL)*time.Second)
	app.OrderRepo = redis_decorator.NewCacheAsideOrderRepo(app.DbDao.OrderRepo, cache)
	return nil
}

func (app *ApplicationContext) setUpProducer() error {
	brokers := app.Cf.Brokers()
	if len(brokers) == 0 {
		app.Logger.Warn().Msg("KAFKA_BROKERS not set, order events disabled")
		app.OrderPublisher = producer.NoopPublisher{}
		return nil
	}

	p, err := producer.New(producer.Config{
		Brokers:       brokers,
		Topic:         app.Cf.KafkaOrderTopic,
		RetryAttempts: 3,
	})
	if err != nil {
		return err
	}
	app.Producer = p
	app.OrderPublisher = producer.NewOrderProducer(p)
	return nil
}

func (app *ApplicationContext) setUpTokenMaker() error {
	maker, err := auth.NewJWTMaker(app.Cf.AuthTokenKey)
	if err != nil {
		return err
	}
	app.TokenMaker = maker
	return nil
}

func (app *ApplicationContext) setUpLimiter() error {
	proxies, err := middleware.ParseTrustedProxies(app.Cf.TrustedProxies)
	if err != nil {
		return err
	}
	app.TrustedProxies = proxies

	cfg := &ratelimit.LimiterConfig{
		Capacity: app.Cf.CheckoutRateCapacity,
		Rate:     app.Cf.CheckoutRatePerSecond,
	}
	if app.RedisClient != nil {
		app.Limiter = ratelimit.NewRedisTokenBucket(app.RedisClient, cfg)
		return nil
	}
	app.Limiter = ratelimit.NewTokenBucket(cfg)
	return nil
}

func (app *ApplicationContext) setUpServices() error {
	opts := []service.OrderServiceOption{service.WithCurrency(app.Cf.PaymentCurrency)}
	if invalidator, ok := app.OrderRepo.(service.LookupInvalidator); ok {
		opts = append(opts, service.WithLookupInvalidator(invalidator))
	}

	app.OrderService = service.NewOrderService(app.OrderRepo, app.DbDao.ProductDBRepo, app.DbDao.StoreRepo, app.OrderPublisher, opts...)
	app.StoreService = service.NewStoreService(app.DbDao.StoreRepo)
	return nil
}

func (app *ApplicationContext) setUpHandlers() error {
	app.OrderHandler = handler.NewOrderHandler(app.OrderService, app.Cf.OrderLookupStoreScoped)
	app.StoreHandler = handler.NewStoreHandler(app.StoreService)
	return nil
}

// Shutdown 依建立的反向順序關閉, 個別錯誤不中斷流程
func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		var errs []error
		// 先等背景中的訂單事件
		if waiter, ok := app.OrderService.(interface{ Wait() }); ok {
			waiter.Wait()
		}
		if app.Producer != nil {
			if err := app.Producer.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close kafka producer: %w", err))
			}
		}
		if app.RedisClient != nil {
			if err := app.RedisClient.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close redis: %w", err))
			}
		}
		if app.DbDao != nil {
			if err := app.DbDao.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close database: %w", err))
			}
		}
		done <- errors.Join(errs...)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %w", ctx.Err())
	}
}
