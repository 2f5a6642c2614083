package database

import (
	"context"

	"photofeed/internal/core/media"
	"photofeed/internal/core/post"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MediaRepositoryDatabase struct {
	db *gorm.DB
}

func NewMediaRepositoryDatabase(db *gorm.DB) *MediaRepositoryDatabase {
	return &MediaRepositoryDatabase{db: db}
}

func (repo *MediaRepositoryDatabase) Create(ctx context.Context, m *media.Media) (*media.Media, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.ID = 0
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRefs(tx, media.Entity,
			reference{field: "post_id", table: post.Entity, model: &post.Post{}, id: m.PostID},
		); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(m).Error
	})
	if err != nil {
		return nil, translateError(media.Entity, err)
	}
	return m, nil
}

func (repo *MediaRepositoryDatabase) FindByID(ctx context.Context, id uint) (*media.Media, error) {
	var m media.Media
	if err := repo.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translateError(media.Entity, err)
	}
	return &m, nil
}

func (repo *MediaRepositoryDatabase) FindByPostID(ctx context.Context, postID uint) ([]*media.Media, error) {
	var items []*media.Media
	if err := repo.db.WithContext(ctx).Where("post_id = ?", postID).Order("id").Find(&items).Error; err != nil {
		return nil, translateError(media.Entity, err)
	}
	return items, nil
}

func (repo *MediaRepositoryDatabase) Update(ctx context.Context, m *media.Media) (*media.Media, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, media.Entity, &media.Media{}, m.ID); err != nil {
			return err
		}
		if err := requireRefs(tx, media.Entity,
			reference{field: "post_id", table: post.Entity, model: &post.Post{}, id: m.PostID},
		); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(m).Error
	})
	if err != nil {
		return nil, translateError(media.Entity, err)
	}
	return m, nil
}

func (repo *MediaRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	return translateError(media.Entity, deleteByID(repo.db.WithContext(ctx), media.Entity, &media.Media{}, id))
}
