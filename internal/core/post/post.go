package post

import (
	"photofeed/internal/core/integrity"
	"photofeed/internal/core/user"
)

const Entity = "post"

type Post struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	UserID uint       `gorm:"not null;index" json:"user_id" validate:"required"`
	User   *user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-" validate:"-"` // owner
}

func (Post) TableName() string { return Entity }

func New(userID uint) (*Post, error) {
	p := &Post{UserID: userID}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Post) Validate() error { return integrity.Validate(Entity, p) }

type Serialized struct {
	ID     uint `json:"id"`
	UserID uint `json:"user_id"`
}

func (p *Post) Serialize() Serialized {
	return Serialized{ID: p.ID, UserID: p.UserID}
}
