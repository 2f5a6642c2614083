package media

import (
	"context"

	"photofeed/internal/core/media"
)

type MediaRepository interface {
	Create(ctx context.Context, media *media.Media) (*media.Media, error)
	FindByID(ctx context.Context, id uint) (*media.Media, error)
	FindByPostID(ctx context.Context, postID uint) ([]*media.Media, error)
	Update(ctx context.Context, media *media.Media) (*media.Media, error)
	Delete(ctx context.Context, id uint) error
}
