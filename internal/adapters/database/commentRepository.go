package database

import (
	"context"

	"photofeed/internal/core/comment"
	"photofeed/internal/core/post"
	"photofeed/internal/core/user"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepositoryDatabase struct {
	db *gorm.DB
}

func NewCommentRepositoryDatabase(db *gorm.DB) *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{db: db}
}

// checkWrite runs the store-side constraints of a comment: both references
// resolve and no other comment sits on the same post.
func (repo *CommentRepositoryDatabase) checkWrite(tx *gorm.DB, c *comment.Comment) error {
	if err := requireRefs(tx, comment.Entity,
		reference{field: "author_id", table: user.Entity, model: &user.User{}, id: c.AuthorID},
		reference{field: "post_id", table: post.Entity, model: &post.Post{}, id: c.PostID},
	); err != nil {
		return err
	}
	return requireUnique(tx, comment.Entity, &comment.Comment{}, c.ID,
		uniqueColumn{column: "post_id", value: c.PostID},
	)
}

func (repo *CommentRepositoryDatabase) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.ID = 0
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.checkWrite(tx, c); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(c).Error
	})
	if err != nil {
		return nil, translateError(comment.Entity, err)
	}
	return c, nil
}

func (repo *CommentRepositoryDatabase) FindByID(ctx context.Context, id uint) (*comment.Comment, error) {
	var c comment.Comment
	if err := repo.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translateError(comment.Entity, err)
	}
	return &c, nil
}

func (repo *CommentRepositoryDatabase) FindByPostID(ctx context.Context, postID uint) (*comment.Comment, error) {
	var c comment.Comment
	if err := repo.db.WithContext(ctx).Where("post_id = ?", postID).First(&c).Error; err != nil {
		return nil, translateError(comment.Entity, err)
	}
	return &c, nil
}

func (repo *CommentRepositoryDatabase) FindByAuthorID(ctx context.Context, authorID uint) ([]*comment.Comment, error) {
	var comments []*comment.Comment
	if err := repo.db.WithContext(ctx).Where("author_id = ?", authorID).Order("id").Find(&comments).Error; err != nil {
		return nil, translateError(comment.Entity, err)
	}
	return comments, nil
}

func (repo *CommentRepositoryDatabase) Update(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, comment.Entity, &comment.Comment{}, c.ID); err != nil {
			return err
		}
		if err := repo.checkWrite(tx, c); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(c).Error
	})
	if err != nil {
		return nil, translateError(comment.Entity, err)
	}
	return c, nil
}

func (repo *CommentRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	return translateError(comment.Entity, deleteByID(repo.db.WithContext(ctx), comment.Entity, &comment.Comment{}, id))
}
