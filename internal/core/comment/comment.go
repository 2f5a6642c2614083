package comment

import (
	"photofeed/internal/core/integrity"
	"photofeed/internal/core/post"
	"photofeed/internal/core/user"
)

const Entity = "comment"

// Comment belongs to exactly one post; the unique index on post_id makes the
// relation one-to-one.
type Comment struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CommentText string     `gorm:"type:varchar(500);not null" json:"comment_text" validate:"required,max=500"`
	AuthorID    uint       `gorm:"not null;index" json:"author_id" validate:"required"`
	Author      *user.User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-" validate:"-"`
	PostID      uint       `gorm:"not null;uniqueIndex" json:"post_id" validate:"required"`
	Post        *post.Post `gorm:"foreignKey:PostID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-" validate:"-"`
}

func (Comment) TableName() string { return Entity }

func New(postID, authorID uint, text string) (*Comment, error) {
	c := &Comment{PostID: postID, AuthorID: authorID, CommentText: text}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Comment) Validate() error { return integrity.Validate(Entity, c) }

// Serialized leaves out the comment text.
type Serialized struct {
	ID       uint `json:"id"`
	AuthorID uint `json:"author_id"`
	PostID   uint `json:"post_id"`
}

func (c *Comment) Serialize() Serialized {
	return Serialized{ID: c.ID, AuthorID: c.AuthorID, PostID: c.PostID}
}
