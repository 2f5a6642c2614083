package database

import (
	"context"

	"photofeed/internal/core/comment"
	"photofeed/internal/core/follower"
	"photofeed/internal/core/post"
	"photofeed/internal/core/user"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepositoryDatabase implements the UserRepository port on gorm.
type UserRepositoryDatabase struct {
	db *gorm.DB
}

// NewUserRepositoryDatabase builds a UserRepositoryDatabase.
func NewUserRepositoryDatabase(db *gorm.DB) *UserRepositoryDatabase {
	return &UserRepositoryDatabase{db: db}
}

func (repo *UserRepositoryDatabase) uniqueColumns(u *user.User) []uniqueColumn {
	return []uniqueColumn{
		{column: "username", value: u.Username},
		{column: "email", value: u.Email},
	}
}

func (repo *UserRepositoryDatabase) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	u.ID = 0
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUnique(tx, user.Entity, &user.User{}, 0, repo.uniqueColumns(u)...); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(u).Error
	})
	if err != nil {
		return nil, translateError(user.Entity, err)
	}
	return u, nil
}

func (repo *UserRepositoryDatabase) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var u user.User
	if err := repo.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translateError(user.Entity, err)
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var u user.User
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translateError(user.Entity, err)
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translateError(user.Entity, err)
	}
	return &u, nil
}

// Update writes every column of u; username and email must stay unique.
func (repo *UserRepositoryDatabase) Update(ctx context.Context, u *user.User) (*user.User, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, user.Entity, &user.User{}, u.ID); err != nil {
			return err
		}
		if err := requireUnique(tx, user.Entity, &user.User{}, u.ID, repo.uniqueColumns(u)...); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(u).Error
	})
	if err != nil {
		return nil, translateError(user.Entity, err)
	}
	return u, nil
}

// Delete refuses to remove a user that still owns posts, comments or follow edges.
func (repo *UserRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUnreferenced(tx, user.Entity, id,
			dependent{table: post.Entity, column: "user_id", model: &post.Post{}},
			dependent{table: comment.Entity, column: "author_id", model: &comment.Comment{}},
			dependent{table: follower.Entity, column: "user_from_id", model: &follower.Follower{}},
			dependent{table: follower.Entity, column: "user_to_id", model: &follower.Follower{}},
		); err != nil {
			return err
		}
		return deleteByID(tx, user.Entity, &user.User{}, id)
	})
	return translateError(user.Entity, err)
}
