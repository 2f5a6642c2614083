package main

import (
	"context"
	"errors"

	dbadapter "photofeed/internal/adapters/database"
	redisadapter "photofeed/internal/adapters/redis"
	"photofeed/internal/config"
	commentapp "photofeed/internal/core/comment/service"
	followerapp "photofeed/internal/core/follower/service"
	"photofeed/internal/core/integrity"
	"photofeed/internal/core/media"
	mediaapp "photofeed/internal/core/media/service"
	postapp "photofeed/internal/core/post/service"
	userapp "photofeed/internal/core/user/service"
	cachePort "photofeed/internal/ports/cache"

	"go.uber.org/zap"
)

type services struct {
	users     *userapp.UserService
	followers *followerapp.FollowerService
	posts     *postapp.PostService
	comments  *commentapp.CommentService
	media     *mediaapp.MediaService
}

func main() {
	config.InitLogger()
	defer config.Logger.Sync() //nolint:errcheck

	config.Init()
	config.InitDB()

	if err := dbadapter.Migrate(config.DB); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("✅ Database migrations completed")

	config.InitRedis()
	defer closeResources(config.Logger)

	// a nil interface, not a typed nil, keeps caching off
	var cache cachePort.SerializedCache
	if config.RedisClient != nil {
		cache = redisadapter.NewSerializedCacheRedis(config.RedisClient, config.Cfg.CacheTTL)
	}

	svc := services{
		users:     userapp.NewUserService(dbadapter.NewUserRepositoryDatabase(config.DB), cache, config.Logger),
		followers: followerapp.NewFollowerService(dbadapter.NewFollowerRepositoryDatabase(config.DB), cache, config.Logger),
		posts:     postapp.NewPostService(dbadapter.NewPostRepositoryDatabase(config.DB), cache, config.Logger),
		comments:  commentapp.NewCommentService(dbadapter.NewCommentRepositoryDatabase(config.DB), cache, config.Logger),
		media:     mediaapp.NewMediaService(dbadapter.NewMediaRepositoryDatabase(config.DB), cache, config.Logger),
	}

	if config.Cfg.Seed {
		if err := seed(context.Background(), config.Logger, svc); err != nil {
			config.Logger.Fatal("Seeding failed", zap.Error(err))
		}
	}
}

// closeResources closes the redis and database connections
func closeResources(logger *zap.Logger) {
	if config.RedisClient != nil {
		if err := config.RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection:", zap.Error(err))
		}
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}

// seed walks through the basic write path once: a user, a post with its
// comment and media, a follower, and a rejected second comment.
func seed(ctx context.Context, logger *zap.Logger, svc services) error {
	logger.Info("🚀 Seeding example data")

	alice, err := svc.users.CreateUser(ctx, "alice", "Alice", "Liddell", "a@x.com", "wonderland", true)
	if err != nil {
		return err
	}
	bob, err := svc.users.CreateUser(ctx, "bob", "Bob", "Builder", "b@x.com", "canwefixit", true)
	if err != nil {
		return err
	}
	logger.Info("users", zap.Any("alice", alice), zap.Any("bob", bob))

	follow, err := svc.followers.FollowUser(ctx, bob.ID, alice.ID)
	if err != nil {
		return err
	}
	logger.Info("follower", zap.Any("follow", follow))

	p, err := svc.posts.CreatePost(ctx, alice.ID)
	if err != nil {
		return err
	}
	logger.Info("post", zap.Any("post", p))

	c, err := svc.comments.CreateComment(ctx, p.ID, alice.ID, "hi")
	if err != nil {
		return err
	}
	logger.Info("comment", zap.Any("comment", c))

	m, err := svc.media.AttachMedia(ctx, p.ID, media.Image, "https://example.com/a.png")
	if err != nil {
		return err
	}
	logger.Info("media", zap.Any("media", m))

	_, err = svc.comments.CreateComment(ctx, p.ID, bob.ID, "second")
	if !errors.Is(err, integrity.ErrUniqueness) {
		return errors.New("second comment on the same post was not rejected")
	}
	logger.Info("✅ Second comment rejected", zap.Error(err))

	return nil
}
