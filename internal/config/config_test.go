package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeEnvFile(t, `SERVER_PORT=9090
POSTGRES_DB=shop
KAFKA_BROKERS=k1:9092, k2:9092
ORDER_LOOKUP_STORE_SCOPED=false
CHECKOUT_RATE_CAPACITY=3
`)

	cf, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "9090", cf.ServerPort)
	require.Equal(t, "shop", cf.DbName)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cf.Brokers())
	require.False(t, cf.OrderLookupStoreScoped)
	require.Equal(t, 3, cf.CheckoutRateCapacity)

	// 未設定的 key 走預設值
	require.Equal(t, "MXN", cf.PaymentCurrency)
	require.Equal(t, 60, cf.OrderLookupCacheTTL)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeEnvFile(t, "PAYMENT_CURRENCY=USD\n")
	t.Setenv("PAYMENT_CURRENCY", "EUR")

	cf, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "EUR", cf.PaymentCurrency)
}

func TestBrokersEmpty(t *testing.T) {
	cf := &Config{KafkaBrokers: " , "}
	require.Empty(t, cf.Brokers())
}

func TestIsDebug(t *testing.T) {
	require.True(t, (&Config{Env: "debug"}).IsDebug())
	require.False(t, (&Config{Env: "production"}).IsDebug())
}
