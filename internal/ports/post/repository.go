package post

import (
	"context"

	"photofeed/internal/core/post"
)

// PostRepository is the outbound port for posts.
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id uint) (*post.Post, error)
	FindByUserID(ctx context.Context, userID uint) ([]*post.Post, error)
	Update(ctx context.Context, post *post.Post) (*post.Post, error)
	Delete(ctx context.Context, id uint) error
}
