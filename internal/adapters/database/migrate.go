package database

import (
	"fmt"

	"photofeed/internal/core/comment"
	"photofeed/internal/core/follower"
	"photofeed/internal/core/media"
	"photofeed/internal/core/post"
	"photofeed/internal/core/user"

	"gorm.io/gorm"
)

// Models lists the five tables, referenced tables first.
func Models() []any {
	return []any{
		&user.User{},
		&follower.Follower{},
		&post.Post{},
		&comment.Comment{},
		&media.Media{},
	}
}

// Migrate creates the tables with their unique and foreign key constraints.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
