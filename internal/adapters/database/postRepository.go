package database

import (
	"context"

	"photofeed/internal/core/comment"
	"photofeed/internal/core/media"
	"photofeed/internal/core/post"
	"photofeed/internal/core/user"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepositoryDatabase implements PostRepository on gorm.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

// NewPostRepositoryDatabase builds a PostRepositoryDatabase.
func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.ID = 0
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRefs(tx, post.Entity,
			reference{field: "user_id", table: user.Entity, model: &user.User{}, id: p.UserID},
		); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(p).Error
	})
	if err != nil {
		return nil, translateError(post.Entity, err)
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uint) (*post.Post, error) {
	var p post.Post
	if err := repo.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translateError(post.Entity, err)
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) FindByUserID(ctx context.Context, userID uint) ([]*post.Post, error) {
	var posts []*post.Post
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&posts).Error; err != nil {
		return nil, translateError(post.Entity, err)
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, post.Entity, &post.Post{}, p.ID); err != nil {
			return err
		}
		if err := requireRefs(tx, post.Entity,
			reference{field: "user_id", table: user.Entity, model: &user.User{}, id: p.UserID},
		); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(p).Error
	})
	if err != nil {
		return nil, translateError(post.Entity, err)
	}
	return p, nil
}

// Delete refuses to remove a post that still has a comment or media.
func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUnreferenced(tx, post.Entity, id,
			dependent{table: comment.Entity, column: "post_id", model: &comment.Comment{}},
			dependent{table: media.Entity, column: "post_id", model: &media.Media{}},
		); err != nil {
			return err
		}
		return deleteByID(tx, post.Entity, &post.Post{}, id)
	})
	return translateError(post.Entity, err)
}
