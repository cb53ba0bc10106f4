package database

import (
	"socialfeed/internal/core/comment"
	"socialfeed/internal/core/post"
	"socialfeed/internal/core/user"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&post.Post{},
		&comment.Comment{},
	)
}
