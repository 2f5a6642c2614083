package followerapp

import (
	"context"
	"testing"
	"time"

	dbadapter "photofeed/internal/adapters/database"
	redisadapter "photofeed/internal/adapters/redis"
	followerEntity "photofeed/internal/core/follower"
	"photofeed/internal/core/integrity"
	"photofeed/internal/core/user"
	cachePort "photofeed/internal/ports/cache"
	"photofeed/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func createUser(t *testing.T, db *gorm.DB, username string) *user.User {
	t.Helper()
	u, err := user.New(username, "First", "Last", username+"@x.com", "opaque", true)
	require.NoError(t, err)
	u, err = dbadapter.NewUserRepositoryDatabase(db).Create(context.Background(), u)
	require.NoError(t, err)
	return u
}

func TestFollowerService(t *testing.T) {
	db := testutils.SetupDB(t)
	mr, client := testutils.SetupRedis(t)
	svc := NewFollowerService(
		dbadapter.NewFollowerRepositoryDatabase(db),
		redisadapter.NewSerializedCacheRedis(client, time.Minute),
		zaptest.NewLogger(t),
	)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	edge, err := svc.FollowUser(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, followerEntity.Serialized{ID: edge.ID, UserFromID: bob.ID, UserToID: alice.ID}, *edge)

	_, err = svc.FollowUser(ctx, bob.ID, 99)
	assert.ErrorIs(t, err, integrity.ErrForeignKey)
	_, err = svc.FollowUser(ctx, 0, alice.ID)
	assert.ErrorIs(t, err, integrity.ErrValidation)

	got, err := svc.GetFollow(ctx, edge.ID)
	require.NoError(t, err)
	assert.Equal(t, *edge, *got)
	key := cachePort.Key(followerEntity.Entity, edge.ID)
	assert.True(t, mr.Exists(key))

	followers, err := svc.GetFollowersByUserID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []followerEntity.Serialized{*edge}, followers)

	none, err := svc.GetFollowingByUserID(ctx, alice.ID)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	ok, err := svc.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, svc.UnfollowUser(ctx, bob.ID, alice.ID))
	assert.False(t, mr.Exists(key))
	assert.ErrorIs(t, svc.UnfollowUser(ctx, bob.ID, alice.ID), integrity.ErrNotFound)
}

func TestUpdateAndDeleteFollow(t *testing.T) {
	db := testutils.SetupDB(t)
	svc := NewFollowerService(dbadapter.NewFollowerRepositoryDatabase(db), nil, zaptest.NewLogger(t))
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	edge, err := svc.FollowUser(ctx, bob.ID, alice.ID)
	require.NoError(t, err)

	moved, err := svc.UpdateFollow(ctx, edge.ID, bob.ID, carol.ID)
	require.NoError(t, err)
	assert.Equal(t, carol.ID, moved.UserToID)

	_, err = svc.UpdateFollow(ctx, edge.ID, bob.ID, 99)
	assert.ErrorIs(t, err, integrity.ErrForeignKey)
	_, err = svc.UpdateFollow(ctx, edge.ID+5, bob.ID, carol.ID)
	assert.ErrorIs(t, err, integrity.ErrNotFound)

	require.NoError(t, svc.DeleteFollow(ctx, edge.ID))
	_, err = svc.GetFollow(ctx, edge.ID)
	assert.ErrorIs(t, err, integrity.ErrNotFound)
}

func TestUnfollowUser_InvalidatesEveryRemovedEdge(t *testing.T) {
	db := testutils.SetupDB(t)
	mr, client := testutils.SetupRedis(t)
	svc := NewFollowerService(
		dbadapter.NewFollowerRepositoryDatabase(db),
		redisadapter.NewSerializedCacheRedis(client, time.Minute),
		zaptest.NewLogger(t),
	)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	first, err := svc.FollowUser(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	second, err := svc.FollowUser(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	for _, id := range []uint{first.ID, second.ID} {
		_, err := svc.GetFollow(ctx, id)
		require.NoError(t, err)
		require.True(t, mr.Exists(cachePort.Key(followerEntity.Entity, id)))
	}

	require.NoError(t, svc.UnfollowUser(ctx, bob.ID, alice.ID))
	assert.False(t, mr.Exists(cachePort.Key(followerEntity.Entity, first.ID)))
	assert.False(t, mr.Exists(cachePort.Key(followerEntity.Entity, second.ID)))

	_, err = svc.GetFollow(ctx, second.ID)
	assert.ErrorIs(t, err, integrity.ErrNotFound)
}
