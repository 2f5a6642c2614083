package userapp

import (
	"testing"
	"time"

	dbadapter "photofeed/internal/adapters/database"
	redisadapter "photofeed/internal/adapters/redis"
	"photofeed/internal/testutils"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// setupService wires a UserService over sqlite and a miniredis backed cache.
func setupService(t *testing.T) (*UserService, *gorm.DB, *miniredis.Miniredis) {
	t.Helper()
	db := testutils.SetupDB(t)
	mr, client := testutils.SetupRedis(t)

	svc := NewUserService(
		dbadapter.NewUserRepositoryDatabase(db),
		redisadapter.NewSerializedCacheRedis(client, time.Minute),
		zaptest.NewLogger(t),
	)
	svc.HashCost = bcrypt.MinCost
	return svc, db, mr
}
