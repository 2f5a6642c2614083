package testutils

import (
	"testing"

	dbadapter "photofeed/internal/adapters/database"
	"photofeed/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SetupDB returns a private in-memory sqlite database with the five tables
// created and foreign keys enforced.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.OpenDB(&config.Config{
		DBDriver: config.DriverSQLite,
		DBDSN:    "file::memory:?_foreign_keys=on",
	})
	require.NoError(t, err)
	require.NoError(t, dbadapter.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// SetupRedis starts a miniredis server and a client connected to it.
func SetupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}
