package media

import (
	"photofeed/internal/core/integrity"
	"photofeed/internal/core/post"
)

const Entity = "media"

type Media struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	Type   Type       `gorm:"type:varchar(5);not null" json:"type" validate:"required,mediatype"`
	PostID uint       `gorm:"not null;index" json:"post_id" validate:"required"`
	Post   *post.Post `gorm:"foreignKey:PostID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-" validate:"-"`
	URL    string     `gorm:"type:varchar(100);not null" json:"url" validate:"required,max=100"`
}

func (Media) TableName() string { return Entity }

func New(postID uint, t Type, url string) (*Media, error) {
	m := &Media{PostID: postID, Type: t, URL: url}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Media) Validate() error { return integrity.Validate(Entity, m) }

type Serialized struct {
	ID   uint   `json:"id"`
	Type Type   `json:"type"`
	URL  string `json:"url"`
}

func (m *Media) Serialize() Serialized {
	return Serialized{ID: m.ID, Type: m.Type, URL: m.URL}
}
