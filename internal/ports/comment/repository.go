package comment

import (
	"context"

	"photofeed/internal/core/comment"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *comment.Comment) (*comment.Comment, error)
	FindByID(ctx context.Context, id uint) (*comment.Comment, error)
	// FindByPostID returns integrity.ErrNotFound when the post has no comment.
	FindByPostID(ctx context.Context, postID uint) (*comment.Comment, error)
	FindByAuthorID(ctx context.Context, authorID uint) ([]*comment.Comment, error)
	Update(ctx context.Context, comment *comment.Comment) (*comment.Comment, error)
	Delete(ctx context.Context, id uint) error
}
