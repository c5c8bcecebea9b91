package db

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// 整合測試需要真實 postgres, 未設定 TEST_POSTGRES_HOST 時略過
func newTestDbConn(t *testing.T) *gorm.DB {
	host := os.Getenv("TEST_POSTGRES_HOST")
	if host == "" {
		t.Skip("TEST_POSTGRES_HOST not set, skipping postgres integration test")
	}

	conn, err := GetDbConn(
		getEnv("TEST_POSTGRES_DB", "ecommerce_admin_test"),
		host,
		getEnv("TEST_POSTGRES_PORT", "5432"),
		getEnv("TEST_POSTGRES_USER", "royce"),
		getEnv("TEST_POSTGRES_PASSWORD", "password"),
	)
	require.NoError(t, err)
	require.NoError(t, NewDbDao(conn).InitMigrate())
	return conn
}

func cleanTables(conn *gorm.DB) {
	conn.Exec("DELETE FROM order_items")
	conn.Exec("DELETE FROM orders")
	conn.Exec("DELETE FROM images")
	conn.Exec("DELETE FROM products")
	conn.Exec("DELETE FROM sizes")
	conn.Exec("DELETE FROM colors")
	conn.Exec("DELETE FROM categories")
	conn.Exec("DELETE FROM billboards")
	conn.Exec("DELETE FROM stores")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
