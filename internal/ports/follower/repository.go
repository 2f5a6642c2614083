package follower

import (
	"context"

	"photofeed/internal/core/follower"
)

// FollowerRepository is the outbound port for follow edges.
type FollowerRepository interface {
	FollowUser(ctx context.Context, follower *follower.Follower) (*follower.Follower, error)
	FindByID(ctx context.Context, id uint) (*follower.Follower, error)
	Update(ctx context.Context, follower *follower.Follower) (*follower.Follower, error)
	// UnfollowUser removes every edge from userFromID to userToID and
	// returns the removed ids.
	UnfollowUser(ctx context.Context, userFromID, userToID uint) ([]uint, error)
	Delete(ctx context.Context, id uint) error
	GetFollowersByUserID(ctx context.Context, userID uint) ([]*follower.Follower, error)
	GetFollowingByUserID(ctx context.Context, userID uint) ([]*follower.Follower, error)
	IsFollowing(ctx context.Context, userFromID, userToID uint) (bool, error)
}
