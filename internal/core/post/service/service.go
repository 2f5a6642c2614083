package postapp

import (
	"context"

	postEntity "photofeed/internal/core/post"
	cachePort "photofeed/internal/ports/cache"
	postPort "photofeed/internal/ports/post"

	"go.uber.org/zap"
)

type PostService struct {
	PostRepository postPort.PostRepository
	Cache          cachePort.SerializedCache
	logger         *zap.Logger
}

func NewPostService(postRepo postPort.PostRepository, cache cachePort.SerializedCache, logger *zap.Logger) *PostService {
	return &PostService{
		PostRepository: postRepo,
		Cache:          cache,
		logger:         logger,
	}
}

// CreatePost creates a post owned by userID, which must exist.
func (s *PostService) CreatePost(ctx context.Context, userID uint) (*postEntity.Serialized, error) {
	post, err := postEntity.New(userID)
	if err != nil {
		return nil, err
	}

	created, err := s.PostRepository.Create(ctx, post)
	if err != nil {
		s.logger.Warn("could not create post", zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("post created", zap.Uint("id", created.ID), zap.Uint("userID", userID))
	out := created.Serialize()
	return &out, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*postEntity.Serialized, error) {
	out, err := cachePort.Fetch(ctx, s.Cache, s.logger, cachePort.Key(postEntity.Entity, id), func() (postEntity.Serialized, error) {
		p, err := s.PostRepository.FindByID(ctx, id)
		if err != nil {
			return postEntity.Serialized{}, err
		}
		return p.Serialize(), nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PostService) GetPostsByUserID(ctx context.Context, userID uint) ([]postEntity.Serialized, error) {
	posts, err := s.PostRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]postEntity.Serialized, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Serialize())
	}
	return out, nil
}

// UpdatePost moves a post to another owner.
func (s *PostService) UpdatePost(ctx context.Context, id, userID uint) (*postEntity.Serialized, error) {
	post, err := postEntity.New(userID)
	if err != nil {
		return nil, err
	}
	post.ID = id

	updated, err := s.PostRepository.Update(ctx, post)
	if err != nil {
		s.logger.Warn("could not update post", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	cachePort.Invalidate(ctx, s.Cache, s.logger, cachePort.Key(postEntity.Entity, id))

	out := updated.Serialize()
	return &out, nil
}

// DeletePost fails while the post still has its comment or any media.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	if err := s.PostRepository.Delete(ctx, id); err != nil {
		s.logger.Warn("could not delete post", zap.Uint("id", id), zap.Error(err))
		return err
	}
	cachePort.Invalidate(ctx, s.Cache, s.logger, cachePort.Key(postEntity.Entity, id))
	s.logger.Info("post deleted", zap.Uint("id", id))
	return nil
}
