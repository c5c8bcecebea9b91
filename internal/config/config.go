package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/constants"
	"github.com/fsnotify/fsnotify"
	viper "github.com/spf13/viper"
)

/*
把init跟read分開
init : 需要設置viper watch 與 onConfigChange
read : 一般讀取, 需要使用讀寫鎖
*/
var config_singleton *ConfigSingleTon
var muonce sync.Once

type ConfigSingleTon struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	Env        string `mapstructure:"ENV"`
	ServerPort string `mapstructure:"SERVER_PORT"`

	DbName string `mapstructure:"POSTGRES_DB"`
	DbHost string `mapstructure:"POSTGRES_HOST"`
	DbPort string `mapstructure:"POSTGRES_PORT"`
	DbUser string `mapstructure:"POSTGRES_USER"`
	DbPas  string `mapstructure:"POSTGRES_PASSWORD"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	KafkaBrokers    string `mapstructure:"KAFKA_BROKERS"`
	KafkaOrderTopic string `mapstructure:"KAFKA_ORDER_TOPIC"`

	AuthTokenKey string `mapstructure:"AUTH_TOKEN_KEY"`

	PaymentCurrency        string  `mapstructure:"PAYMENT_CURRENCY"`
	OrderLookupStoreScoped bool    `mapstructure:"ORDER_LOOKUP_STORE_SCOPED"`
	OrderLookupCacheTTL    int     `mapstructure:"ORDER_LOOKUP_CACHE_TTL"`
	CheckoutRateCapacity   int     `mapstructure:"CHECKOUT_RATE_CAPACITY"`
	CheckoutRatePerSecond  float64 `mapstructure:"CHECKOUT_RATE_PER_SECOND"`
	TrustedProxies         string  `mapstructure:"TRUSTED_PROXIES"`
}

// Brokers KAFKA_BROKERS 以逗號分隔
func (c *Config) Brokers() []string {
	brokers := make([]string, 0)
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (c *Config) IsDebug() bool {
	return constants.ENV(c.Env) == constants.Debug
}

var defaults = map[string]any{
	"ENV":                       string(constants.Dev),
	"SERVER_PORT":               "8080",
	"POSTGRES_DB":               "ecommerce_admin",
	"POSTGRES_HOST":             "localhost",
	"POSTGRES_PORT":             "5432",
	"POSTGRES_USER":             "postgres",
	"POSTGRES_PASSWORD":         "",
	"REDIS_ADDR":                "",
	"REDIS_PASSWORD":            "",
	"REDIS_DB":                  0,
	"KAFKA_BROKERS":             "",
	"KAFKA_ORDER_TOPIC":         "order-events",
	"AUTH_TOKEN_KEY":            "",
	"PAYMENT_CURRENCY":          constants.DefaultCurrency,
	"ORDER_LOOKUP_STORE_SCOPED": true,
	"ORDER_LOOKUP_CACHE_TTL":    constants.DefaultLookupCacheTTL,
	"CHECKOUT_RATE_CAPACITY":    20,
	"CHECKOUT_RATE_PER_SECOND":  5.0,
	"TRUSTED_PROXIES":           "",
}

// GetConfig 第一次呼叫時載入 CONFIG_PATH (預設 ./.env) 並開始監看檔案
func GetConfig() *Config {
	initConfig()
	config_singleton.mu.RLock()
	defer config_singleton.mu.RUnlock()
	return config_singleton.Config
}

func initConfig() {
	muonce.Do(func() {
		config_singleton = &ConfigSingleTon{}
		path := configPath()
		cf, err := LoadConfig(path)
		if err != nil {
			log.Fatalf("error read config %s: %v", path, err)
		}
		config_singleton.Config = cf

		if _, err := os.Stat(path); err != nil {
			return
		}
		viper.WatchConfig()
		viper.OnConfigChange(func(e fsnotify.Event) {
			cf, err := LoadConfig(path)
			if err != nil {
				log.Printf("failed to reload config file %s: %v", e.Name, err)
				return
			}
			config_singleton.mu.Lock()
			config_singleton.Config = cf
			config_singleton.mu.Unlock()
		})
	})
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "./.env"
}

var loadMu sync.Mutex

/*
單純回傳錯誤  由外部決定要不要Fatal
檔案不存在時只用環境變數與預設值
*/
func LoadConfig(path string) (*Config, error) {
	loadMu.Lock()
	defer loadMu.Unlock()

	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
	viper.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		viper.SetConfigFile(path)
		viper.SetConfigType("env")
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cf := &Config{}
	if err := viper.Unmarshal(cf); err != nil {
		return nil, err
	}
	return cf, nil
}
