package commentapp

import (
	"context"

	commentEntity "photofeed/internal/core/comment"
	cachePort "photofeed/internal/ports/cache"
	commentPort "photofeed/internal/ports/comment"

	"go.uber.org/zap"
)

type CommentService struct {
	CommentRepository commentPort.CommentRepository
	Cache             cachePort.SerializedCache
	logger            *zap.Logger
}

func NewCommentService(repo commentPort.CommentRepository, cache cachePort.SerializedCache, logger *zap.Logger) *CommentService {
	return &CommentService{
		CommentRepository: repo,
		Cache:             cache,
		logger:            logger,
	}
}

// CreateComment adds the single comment a post may carry.
func (s *CommentService) CreateComment(ctx context.Context, postID, authorID uint, text string) (*commentEntity.Serialized, error) {
	c, err := commentEntity.New(postID, authorID, text)
	if err != nil {
		return nil, err
	}

	created, err := s.CommentRepository.Create(ctx, c)
	if err != nil {
		s.logger.Warn("could not create comment", zap.Uint("postID", postID), zap.Uint("authorID", authorID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("comment created", zap.Uint("id", created.ID), zap.Uint("postID", postID))
	out := created.Serialize()
	return &out, nil
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (*commentEntity.Serialized, error) {
	out, err := cachePort.Fetch(ctx, s.Cache, s.logger, cachePort.Key(commentEntity.Entity, id), func() (commentEntity.Serialized, error) {
		c, err := s.CommentRepository.FindByID(ctx, id)
		if err != nil {
			return commentEntity.Serialized{}, err
		}
		return c.Serialize(), nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CommentService) GetCommentByPostID(ctx context.Context, postID uint) (*commentEntity.Serialized, error) {
	c, err := s.CommentRepository.FindByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	out := c.Serialize()
	return &out, nil
}

func (s *CommentService) GetCommentsByAuthorID(ctx context.Context, authorID uint) ([]commentEntity.Serialized, error) {
	comments, err := s.CommentRepository.FindByAuthorID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	out := make([]commentEntity.Serialized, 0, len(comments))
	for _, c := range comments {
		out = append(out, c.Serialize())
	}
	return out, nil
}

func (s *CommentService) UpdateCommentText(ctx context.Context, id uint, text string) (*commentEntity.Serialized, error) {
	c, err := s.CommentRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.CommentText = text

	updated, err := s.CommentRepository.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	cachePort.Invalidate(ctx, s.Cache, s.logger, cachePort.Key(commentEntity.Entity, id))

	out := updated.Serialize()
	return &out, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id uint) error {
	if err := s.CommentRepository.Delete(ctx, id); err != nil {
		return err
	}
	cachePort.Invalidate(ctx, s.Cache, s.logger, cachePort.Key(commentEntity.Entity, id))
	s.logger.Info("comment deleted", zap.Uint("id", id))
	return nil
}
