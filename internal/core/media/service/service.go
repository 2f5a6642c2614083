package mediaapp

import (
	"context"

	mediaEntity "photofeed/internal/core/media"
	cachePort "photofeed/internal/ports/cache"
	mediaPort "photofeed/internal/ports/media"

	"go.uber.org/zap"
)

type MediaService struct {
	MediaRepository mediaPort.MediaRepository
	Cache           cachePort.SerializedCache
	logger          *zap.Logger
}

func NewMediaService(repo mediaPort.MediaRepository, cache cachePort.SerializedCache, logger *zap.Logger) *MediaService {
	return &MediaService{
		MediaRepository: repo,
		Cache:           cache,
		logger:          logger,
	}
}

// MediaUpdate holds the fields to change; nil fields are left untouched.
type MediaUpdate struct {
	Type   *mediaEntity.Type
	PostID *uint
	URL    *string
}

func (s *MediaService) AttachMedia(ctx context.Context, postID uint, mediaType mediaEntity.Type, url string) (*mediaEntity.Serialized, error) {
	m, err := mediaEntity.New(postID, mediaType, url)
	if err != nil {
		return nil, err
	}

	created, err := s.MediaRepository.Create(ctx, m)
	if err != nil {
		s.logger.Warn("could not attach media", zap.Uint("postID", postID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("media attached", zap.Uint("id", created.ID), zap.Uint("postID", postID), zap.Stringer("type", created.Type))
	out := created.Serialize()
	return &out, nil
}

func (s *MediaService) GetMedia(ctx context.Context, id uint) (*mediaEntity.Serialized, error) {
	out, err := cachePort.Fetch(ctx, s.Cache, s.logger, cachePort.Key(mediaEntity.Entity, id), func() (mediaEntity.Serialized, error) {
		m, err := s.MediaRepository.FindByID(ctx, id)
		if err != nil {
			return mediaEntity.Serialized{}, err
		}
		return m.Serialize(), nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MediaService) GetMediaByPostID(ctx context.Context, postID uint) ([]mediaEntity.Serialized, error) {
	items, err := s.MediaRepository.FindByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	out := make([]mediaEntity.Serialized, 0, len(items))
	for _, m := range items {
		out = append(out, m.Serialize())
	}
	return out, nil
}

func (s *MediaService) UpdateMedia(ctx context.Context, id uint, upd MediaUpdate) (*mediaEntity.Serialized, error) {
	m, err := s.MediaRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Type != nil {
		m.Type = *upd.Type
	}
	if upd.PostID != nil {
		m.PostID = *upd.PostID
	}
	if upd.URL != nil {
		m.URL = *upd.URL
	}

	updated, err := s.MediaRepository.Update(ctx, m)
	if err != nil {
		return nil, err
	}
	cachePort.Invalidate(ctx, s.Cache, s.logger, cachePort.Key(mediaEntity.Entity, id))

	out := updated.Serialize()
	return &out, nil
}

func (s *MediaService) DeleteMedia(ctx context.Context, id uint) error {
	if err := s.MediaRepository.Delete(ctx, id); err != nil {
		return err
	}
	cachePort.Invalidate(ctx, s.Cache, s.logger, cachePort.Key(mediaEntity.Entity, id))
	return nil
}
