package follower

import (
	"photofeed/internal/core/integrity"
	"photofeed/internal/core/user"
)

const Entity = "follower"

// Follower is a follow edge: UserFrom follows UserTo. The pair is not unique.
type Follower struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserFromID uint       `gorm:"not null;index" json:"user_from_id" validate:"required"`
	UserFrom   *user.User `gorm:"foreignKey:UserFromID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-" validate:"-"`
	UserToID   uint       `gorm:"not null;index" json:"user_to_id" validate:"required"`
	UserTo     *user.User `gorm:"foreignKey:UserToID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-" validate:"-"`
}

func (Follower) TableName() string { return Entity }

func New(userFromID, userToID uint) (*Follower, error) {
	f := &Follower{UserFromID: userFromID, UserToID: userToID}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Follower) Validate() error { return integrity.Validate(Entity, f) }

type Serialized struct {
	ID         uint `json:"id"`
	UserFromID uint `json:"user_from_id"`
	UserToID   uint `json:"user_to_id"`
}

func (f *Follower) Serialize() Serialized {
	return Serialized{ID: f.ID, UserFromID: f.UserFromID, UserToID: f.UserToID}
}
