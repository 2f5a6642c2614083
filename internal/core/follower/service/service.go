package followerapp

import (
	"context"

	followerEntity "photofeed/internal/core/follower"
	cachePort "photofeed/internal/ports/cache"
	followerPort "photofeed/internal/ports/follower"

	"go.uber.org/zap"
)

type FollowerService struct {
	FollowerRepository followerPort.FollowerRepository
	Cache              cachePort.SerializedCache
	logger             *zap.Logger
}

func NewFollowerService(repo followerPort.FollowerRepository, cache cachePort.SerializedCache, logger *zap.Logger) *FollowerService {
	return &FollowerService{
		FollowerRepository: repo,
		Cache:              cache,
		logger:             logger,
	}
}

// FollowUser records that userFromID follows userToID. Repeated edges and
// self-follows are accepted; callers wanting to refuse them check IsFollowing.
func (s *FollowerService) FollowUser(ctx context.Context, userFromID, userToID uint) (*followerEntity.Serialized, error) {
	f, err := followerEntity.New(userFromID, userToID)
	if err != nil {
		return nil, err
	}

	created, err := s.FollowerRepository.FollowUser(ctx, f)
	if err != nil {
		s.logger.Warn("could not follow user", zap.Uint("from", userFromID), zap.Uint("to", userToID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("follow edge created", zap.Uint("id", created.ID), zap.Uint("from", userFromID), zap.Uint("to", userToID))
	out := created.Serialize()
	return &out, nil
}

// UnfollowUser drops every edge from userFromID to userToID.
func (s *FollowerService) UnfollowUser(ctx context.Context, userFromID, userToID uint) error {
	ids, err := s.FollowerRepository.UnfollowUser(ctx, userFromID, userToID)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, cachePort.Key(followerEntity.Entity, id))
	}
	cachePort.Invalidate(ctx, s.Cache, s.logger, keys...)

	s.logger.Info("follow edges removed", zap.Uint("from", userFromID), zap.Uint("to", userToID), zap.Int("count", len(ids)))
	return nil
}

func (s *FollowerService) GetFollow(ctx context.Context, id uint) (*followerEntity.Serialized, error) {
	out, err := cachePort.Fetch(ctx, s.Cache, s.logger, cachePort.Key(followerEntity.Entity, id), func() (followerEntity.Serialized, error) {
		f, err := s.FollowerRepository.FindByID(ctx, id)
		if err != nil {
			return followerEntity.Serialized{}, err
		}
		return f.Serialize(), nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFollow rewrites both ends of an edge.
func (s *FollowerService) UpdateFollow(ctx context.Context, id, userFromID, userToID uint) (*followerEntity.Serialized, error) {
	f, err := followerEntity.New(userFromID, userToID)
	if err != nil {
		return nil, err
	}
	f.ID = id

	updated, err := s.FollowerRepository.Update(ctx, f)
	if err != nil {
		return nil, err
	}
	cachePort.Invalidate(ctx, s.Cache, s.logger, cachePort.Key(followerEntity.Entity, id))

	out := updated.Serialize()
	return &out, nil
}

func (s *FollowerService) DeleteFollow(ctx context.Context, id uint) error {
	if err := s.FollowerRepository.Delete(ctx, id); err != nil {
		return err
	}
	cachePort.Invalidate(ctx, s.Cache, s.logger, cachePort.Key(followerEntity.Entity, id))
	return nil
}

// GetFollowersByUserID lists the edges whose user_to_id is userID.
func (s *FollowerService) GetFollowersByUserID(ctx context.Context, userID uint) ([]followerEntity.Serialized, error) {
	followers, err := s.FollowerRepository.GetFollowersByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return serializeAll(followers), nil
}

// GetFollowingByUserID lists the edges whose user_from_id is userID.
func (s *FollowerService) GetFollowingByUserID(ctx context.Context, userID uint) ([]followerEntity.Serialized, error) {
	following, err := s.FollowerRepository.GetFollowingByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return serializeAll(following), nil
}

func (s *FollowerService) IsFollowing(ctx context.Context, userFromID, userToID uint) (bool, error) {
	return s.FollowerRepository.IsFollowing(ctx, userFromID, userToID)
}

// serializeAll never returns nil so an empty list encodes as [].
func serializeAll(edges []*followerEntity.Follower) []followerEntity.Serialized {
	out := make([]followerEntity.Serialized, 0, len(edges))
	for _, f := range edges {
		out = append(out, f.Serialize())
	}
	return out
}
