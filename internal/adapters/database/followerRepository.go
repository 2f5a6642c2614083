package database

import (
	"context"
	"fmt"

	"photofeed/internal/core/follower"
	"photofeed/internal/core/integrity"
	"photofeed/internal/core/user"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowerRepositoryDatabase implements FollowerRepository on gorm.
type FollowerRepositoryDatabase struct {
	db *gorm.DB
}

// NewFollowerRepositoryDatabase builds a FollowerRepositoryDatabase.
func NewFollowerRepositoryDatabase(db *gorm.DB) *FollowerRepositoryDatabase {
	return &FollowerRepositoryDatabase{db: db}
}

func followerRefs(f *follower.Follower) []reference {
	return []reference{
		{field: "user_from_id", table: user.Entity, model: &user.User{}, id: f.UserFromID},
		{field: "user_to_id", table: user.Entity, model: &user.User{}, id: f.UserToID},
	}
}

func (repo *FollowerRepositoryDatabase) FollowUser(ctx context.Context, f *follower.Follower) (*follower.Follower, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	f.ID = 0
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRefs(tx, follower.Entity, followerRefs(f)...); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(f).Error
	})
	if err != nil {
		return nil, translateError(follower.Entity, err)
	}
	return f, nil
}

func (repo *FollowerRepositoryDatabase) FindByID(ctx context.Context, id uint) (*follower.Follower, error) {
	var f follower.Follower
	if err := repo.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, translateError(follower.Entity, err)
	}
	return &f, nil
}

func (repo *FollowerRepositoryDatabase) Update(ctx context.Context, f *follower.Follower) (*follower.Follower, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, follower.Entity, &follower.Follower{}, f.ID); err != nil {
			return err
		}
		if err := requireRefs(tx, follower.Entity, followerRefs(f)...); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(f).Error
	})
	if err != nil {
		return nil, translateError(follower.Entity, err)
	}
	return f, nil
}

// UnfollowUser removes every edge from userFromID to userToID and returns the
// ids it removed.
func (repo *FollowerRepositoryDatabase) UnfollowUser(ctx context.Context, userFromID, userToID uint) ([]uint, error) {
	var ids []uint
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&follower.Follower{}).
			Where("user_from_id = ? AND user_to_id = ?", userFromID, userToID).
			Order("id").
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return fmt.Errorf("follower %d->%d: %w", userFromID, userToID, integrity.ErrNotFound)
		}
		return tx.Delete(&follower.Follower{}, ids).Error
	})
	if err != nil {
		return nil, translateError(follower.Entity, err)
	}
	return ids, nil
}

// Delete removes one edge. Nothing references a follow edge, so no restrict check.
func (repo *FollowerRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	return translateError(follower.Entity, deleteByID(repo.db.WithContext(ctx), follower.Entity, &follower.Follower{}, id))
}

// GetFollowersByUserID lists the edges pointing at userID.
func (repo *FollowerRepositoryDatabase) GetFollowersByUserID(ctx context.Context, userID uint) ([]*follower.Follower, error) {
	var followers []*follower.Follower
	if err := repo.db.WithContext(ctx).Where("user_to_id = ?", userID).Order("id").Find(&followers).Error; err != nil {
		return nil, translateError(follower.Entity, err)
	}
	return followers, nil
}

// GetFollowingByUserID lists the edges starting at userID.
func (repo *FollowerRepositoryDatabase) GetFollowingByUserID(ctx context.Context, userID uint) ([]*follower.Follower, error) {
	var following []*follower.Follower
	if err := repo.db.WithContext(ctx).Where("user_from_id = ?", userID).Order("id").Find(&following).Error; err != nil {
		return nil, translateError(follower.Entity, err)
	}
	return following, nil
}

func (repo *FollowerRepositoryDatabase) IsFollowing(ctx context.Context, userFromID, userToID uint) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&follower.Follower{}).
		Where("user_from_id = ? AND user_to_id = ?", userFromID, userToID).
		Count(&count).Error; err != nil {
		return false, translateError(follower.Entity, err)
	}
	return count > 0, nil
}
