package user

import "photofeed/internal/core/integrity"

// Entity is the table name and the entity name used in integrity errors.
const Entity = "user"

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"type:varchar(80);unique;not null" json:"username" validate:"required,max=80"`
	FirstName string `gorm:"type:varchar(80);not null" json:"first_name" validate:"required,max=80"`
	LastName  string `gorm:"type:varchar(80);not null" json:"last_name" validate:"required,max=80"`
	Email     string `gorm:"type:varchar(120);unique;not null" json:"email" validate:"required,max=120"`
	Password  string `gorm:"not null" json:"-" validate:"required"` // opaque credential, never serialized
	IsActive  bool   `gorm:"not null" json:"is_active"`
}

func (User) TableName() string { return Entity }

// New builds a user and checks the column constraints that need no store access.
func New(username, firstName, lastName, email, password string, isActive bool) (*User, error) {
	u := &User{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		IsActive:  isActive,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) Validate() error { return integrity.Validate(Entity, u) }

// Serialized is the external shape of a user. It carries no credential or
// personal name fields.
type Serialized struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

func (u *User) Serialize() Serialized {
	return Serialized{ID: u.ID, Email: u.Email}
}
